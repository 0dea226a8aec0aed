package example

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gidgo/internal/algorithm"
	"github.com/vk/gidgo/internal/stategraph"
)

func TestStates(t *testing.T) {
	in := Input{
		stategraph.AddEdgeUpdate(3, 1),
		stategraph.CloseUpdate(7),
		stategraph.LiveUpdate(1),
	}
	assert.Equal(t, []int{1, 3, 7}, in.States())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ex := &Example{
		Name: "roundtrip",
		Input: Input{
			stategraph.AddEdgeUpdate(0, 1),
			stategraph.CloseUpdate(1),
		},
		Expected: &Output{
			Live: []int{}, Dead: []int{1}, Unknown: []int{}, Open: []int{0},
		},
	}
	require.NoError(t, ex.Save(dir))

	loaded, err := Load(filepath.Join(dir, "roundtrip"))
	require.NoError(t, err)
	assert.Equal(t, ex.Input, loaded.Input)
	require.NotNil(t, loaded.Expected)
	assert.True(t, ex.Expected.Equal(loaded.Expected))
}

func TestLoadWithoutExpectation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bare"+InSuffix)
	require.NoError(t, os.WriteFile(path, []byte(`[{"Close":0}]`), 0o644))

	ex, err := Load(filepath.Join(dir, "bare"))
	require.NoError(t, err)
	assert.Nil(t, ex.Expected)
	assert.True(t, ex.Matches(&Output{Live: []int{}, Dead: []int{0}, Unknown: []int{}, Open: []int{}}))
}

func TestLoadMissingInput(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadMalformedInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad"+InSuffix)
	require.NoError(t, os.WriteFile(path, []byte(`[{"Frob":0}]`), 0o644))
	_, err := Load(filepath.Join(dir, "bad"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	ex := &Example{
		Name: "run",
		Input: Input{
			stategraph.AddEdgeUpdate(0, 1),
			stategraph.AddEdgeUpdate(1, 2),
			stategraph.CloseUpdate(1),
			stategraph.CloseUpdate(2),
		},
		Expected: &Output{Live: []int{}, Dead: []int{1, 2}, Unknown: []int{}, Open: []int{0}},
	}
	out, err := ex.Run(context.Background(), algorithm.NewSimple())
	require.NoError(t, err)
	assert.True(t, ex.Matches(out))
}

func TestRunExpiredContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	ex := &Example{Name: "expired", Input: Input{stategraph.CloseUpdate(0)}}
	_, err := ex.Run(ctx, algorithm.NewNaive())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
