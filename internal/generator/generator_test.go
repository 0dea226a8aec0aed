package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gidgo/internal/algorithm"
	"github.com/vk/gidgo/internal/example"
)

// Every structured family must carry an expectation the detectors meet.
func TestStructuredFamiliesSelfConsistent(t *testing.T) {
	examples := []*example.Example{
		Line(1), Line(5), Line(20),
		UnkLine(1), UnkLine(8),
		ReverseLine(5), ReverseLine(12),
		LiveLine(1), LiveLine(9),
		Loop(1), Loop(2), Loop(7),
		UnkLoop(1), UnkLoop(6),
		Complete(2), Complete(5),
		UnkComplete(4),
		CompleteAcyclic(5),
		Bipartite(2, 3), Bipartite(3, 3),
		LiveBipartite(3, 3),
		UnkBipartite(2, 2), UnkBipartite(3, 4),
	}
	for _, ex := range examples {
		ex := ex
		t.Run(ex.Name, func(t *testing.T) {
			require.NotNil(t, ex.Expected)
			out, err := ex.Run(context.Background(), algorithm.NewNaive())
			require.NoError(t, err)
			assert.True(t, ex.Matches(out), "naive got %+v, want %+v", out, ex.Expected)
		})
	}
}

// Random families have no expectation; the detectors define each other's.
func TestRandomFamiliesAgree(t *testing.T) {
	for _, ex := range []*example.Example{
		Sparse(40, 2, 1), Sparse(40, 3, 2), Dense(25, 5, 3),
	} {
		assert.Nil(t, ex.Expected)
		naiveOut, err := ex.Run(context.Background(), algorithm.NewNaive())
		require.NoError(t, err)
		for _, d := range []struct {
			name string
			out  func() (*example.Output, error)
		}{
			{"jump", func() (*example.Output, error) { return ex.Run(context.Background(), algorithm.NewJump()) }},
			{"log", func() (*example.Output, error) { return ex.Run(context.Background(), algorithm.NewLog()) }},
		} {
			out, err := d.out()
			require.NoError(t, err)
			assert.True(t, naiveOut.Equal(out), "%s disagrees on %s", d.name, ex.Name)
		}
	}
}

func TestSeededGenerationIsDeterministic(t *testing.T) {
	a := Sparse(30, 3, 42)
	b := Sparse(30, 3, 42)
	assert.Equal(t, a.Input, b.Input)
	c := Sparse(30, 3, 43)
	assert.NotEqual(t, a.Input, c.Input)
}

func TestDefaultSuite(t *testing.T) {
	suite := DefaultSuite()
	examples, err := suite.Examples()
	require.NoError(t, err)
	assert.NotEmpty(t, examples)
	names := map[string]bool{}
	for _, ex := range examples {
		assert.False(t, names[ex.Name], "duplicate example name %s", ex.Name)
		names[ex.Name] = true
	}
}

func TestLoadSuite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir = "out/examples"

family "line" {
  sizes = [3, 10]
}

family "sparse" {
  sizes  = [50]
  degree = 2
  seeds  = [7, 8]
}
`), 0o644))

	suite, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Equal(t, "out/examples", suite.OutputDir)
	require.Len(t, suite.Families, 2)
	assert.Equal(t, Family{Kind: "line", Sizes: []int{3, 10}, Degree: 3, Percent: 3, Seeds: []int64{1}}, suite.Families[0])
	assert.Equal(t, Family{Kind: "sparse", Sizes: []int{50}, Degree: 2, Percent: 3, Seeds: []int64{7, 8}}, suite.Families[1])

	examples, err := suite.Examples()
	require.NoError(t, err)
	assert.Len(t, examples, 4)
}

func TestLoadSuiteRejectsUnknownAttr(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
family "line" {
  sizes = [3]
  nope  = true
}
`), 0o644))
	_, err := LoadSuite(path)
	assert.Error(t, err)
}

func TestUnknownFamilyKind(t *testing.T) {
	suite := &Suite{Families: []Family{{Kind: "möbius", Sizes: []int{3}}}}
	_, err := suite.Examples()
	assert.Error(t, err)
}
