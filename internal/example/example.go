package example

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/vk/gidgo/internal/stategraph"
)

// File suffixes of the on-disk layout.
const (
	InSuffix     = "_in.json"
	ExpectSuffix = "_expect.json"
)

// Input is the ordered update stream of one example.
type Input []stategraph.Update

// States returns every vertex mentioned anywhere in the stream, sorted.
func (in Input) States() []int {
	seen := make(map[int]bool)
	for _, u := range in {
		for _, v := range u.Touches() {
			seen[v] = true
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Output is the final partition document.
type Output = stategraph.Snapshot

// Example is one runnable test case. Expected is nil when no expectation
// file exists; such examples count as correct on any output.
type Example struct {
	Name     string
	Input    Input
	Expected *Output
}

// Load reads prefix+"_in.json" and, if present, prefix+"_expect.json".
func Load(prefix string) (*Example, error) {
	ex := &Example{Name: filepath.Base(prefix)}
	if err := readJSON(prefix+InSuffix, &ex.Input); err != nil {
		return nil, err
	}
	var expect Output
	switch err := readJSON(prefix+ExpectSuffix, &expect); {
	case err == nil:
		ex.Expected = &expect
	case errors.Is(err, fs.ErrNotExist):
		// expectation file is optional
	default:
		return nil, err
	}
	return ex, nil
}

// Save writes the example files under dir using the example's name as
// prefix.
func (e *Example) Save(dir string) error {
	prefix := filepath.Join(dir, e.Name)
	if err := writeJSON(prefix+InSuffix, e.Input); err != nil {
		return err
	}
	if e.Expected != nil {
		return writeJSON(prefix+ExpectSuffix, e.Expected)
	}
	return nil
}

// checkEvery is how many updates the run loop applies between context
// deadline checks.
const checkEvery = 256

// Run feeds the update stream to the detector, checking ctx between
// batches of updates, and returns the final partition over every vertex
// the stream mentions. The context error is returned unwrapped inside the
// wrap chain so callers can test for deadline expiry.
func (e *Example) Run(ctx context.Context, d stategraph.Detector) (*Output, error) {
	for i, u := range e.Input {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("after %d of %d updates: %w", i, len(e.Input), err)
			}
		}
		stategraph.Apply(d, u)
	}
	return stategraph.Collect(d, e.Input.States()), nil
}

// Matches reports whether out satisfies the example's expectation.
func (e *Example) Matches(out *Output) bool {
	return e.Expected == nil || e.Expected.Equal(out)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
