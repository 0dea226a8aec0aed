package driver

import (
	"fmt"
	"strings"

	"github.com/vk/gidgo/internal/algorithm"
	"github.com/vk/gidgo/internal/stategraph"
)

// Algorithm selects one of the detector implementations.
type Algorithm int

const (
	Naive Algorithm = iota
	Simple
	BFGT
	Log
	Jump
)

// All lists every algorithm in comparison order.
var All = []Algorithm{Naive, Simple, BFGT, Log, Jump}

func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case Simple:
		return "simple"
	case BFGT:
		return "bfgt"
	case Log:
		return "log"
	case Jump:
		return "jump"
	default:
		return "invalid"
	}
}

// Letter returns the single-letter flag form.
func (a Algorithm) Letter() string {
	switch a {
	case Naive:
		return "n"
	case Simple:
		return "s"
	case BFGT:
		return "b"
	case Log:
		return "l"
	case Jump:
		return "j"
	default:
		return "?"
	}
}

// New returns a fresh detector of this kind.
func (a Algorithm) New() stategraph.Detector {
	switch a {
	case Naive:
		return algorithm.NewNaive()
	case Simple:
		return algorithm.NewSimple()
	case BFGT:
		return algorithm.NewBFGT()
	case Log:
		return algorithm.NewLog()
	case Jump:
		return algorithm.NewJump()
	default:
		panic(fmt.Sprintf("driver: invalid algorithm %d", int(a)))
	}
}

// Parse accepts an algorithm name or its single-letter form,
// case-insensitively.
func Parse(s string) (Algorithm, error) {
	for _, a := range All {
		if t := strings.ToLower(s); t == a.String() || t == a.Letter() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q (want one of n, s, b, l, j)", s)
}

// ParseList parses a comma-separated list of algorithm names.
func ParseList(s string) ([]Algorithm, error) {
	if s == "" {
		return nil, nil
	}
	var out []Algorithm
	for _, part := range strings.Split(s, ",") {
		a, err := Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Excluding returns All minus the given algorithms.
func Excluding(excluded []Algorithm) []Algorithm {
	var out []Algorithm
	for _, a := range All {
		skip := false
		for _, e := range excluded {
			if a == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, a)
		}
	}
	return out
}
