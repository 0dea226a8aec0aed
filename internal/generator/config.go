package generator

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/gidgo/internal/example"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Suite declares which example families to generate.
type Suite struct {
	// OutputDir is where the example files are written.
	OutputDir string
	Families  []Family
}

// Family is one block of the suite: a family kind plus its parameters.
// Degree, Percent and Seeds only apply to the random kinds.
type Family struct {
	Kind    string
	Sizes   []int
	Degree  int
	Percent int
	Seeds   []int64
}

type suiteHCL struct {
	OutputDir string      `hcl:"output_dir,optional"`
	Families  []familyHCL `hcl:"family,block"`
}

type familyHCL struct {
	Kind   string   `hcl:"kind,label"`
	Sizes  []int    `hcl:"sizes"`
	Remain hcl.Body `hcl:",remain"`
}

// LoadSuite parses an HCL suite file.
func LoadSuite(path string) (*Suite, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}
	var raw suiteHCL
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}

	suite := &Suite{OutputDir: raw.OutputDir}
	if suite.OutputDir == "" {
		suite.OutputDir = "examples/generated"
	}
	for _, f := range raw.Families {
		fam := Family{Kind: f.Kind, Sizes: f.Sizes, Degree: 3, Percent: 3, Seeds: []int64{1}}
		if err := decodeFamilyAttrs(f.Remain, &fam); err != nil {
			return nil, fmt.Errorf("family %q: %w", f.Kind, err)
		}
		suite.Families = append(suite.Families, fam)
	}
	return suite, nil
}

// decodeFamilyAttrs reads the optional per-family attributes out of the
// remaining HCL body.
func decodeFamilyAttrs(body hcl.Body, fam *Family) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("attributes: %w", diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("attribute %q: %w", name, diags)
		}
		switch name {
		case "degree":
			if err := ctyInt(val, &fam.Degree); err != nil {
				return fmt.Errorf("degree: %w", err)
			}
		case "percent":
			if err := ctyInt(val, &fam.Percent); err != nil {
				return fmt.Errorf("percent: %w", err)
			}
		case "seeds":
			listVal, err := convert.Convert(val, cty.List(cty.Number))
			if err != nil {
				return fmt.Errorf("seeds: %w", err)
			}
			fam.Seeds = fam.Seeds[:0]
			for _, v := range listVal.AsValueSlice() {
				var seed int64
				if err := gocty.FromCtyValue(v, &seed); err != nil {
					return fmt.Errorf("seeds: %w", err)
				}
				fam.Seeds = append(fam.Seeds, seed)
			}
		default:
			return fmt.Errorf("unsupported attribute %q", name)
		}
	}
	return nil
}

func ctyInt(val cty.Value, out *int) error {
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return err
	}
	return gocty.FromCtyValue(num, out)
}

// DefaultSuite is used when no suite file is given.
func DefaultSuite() *Suite {
	sizes := []int{3, 10, 30, 100}
	return &Suite{
		OutputDir: "examples/generated",
		Families: []Family{
			{Kind: "line", Sizes: sizes},
			{Kind: "unkline", Sizes: sizes},
			{Kind: "reverseline", Sizes: sizes},
			{Kind: "liveline", Sizes: sizes},
			{Kind: "loop", Sizes: sizes},
			{Kind: "unkloop", Sizes: sizes},
			{Kind: "complete", Sizes: []int{3, 10, 30}},
			{Kind: "unkcomplete", Sizes: []int{3, 10, 30}},
			{Kind: "completeacyclic", Sizes: []int{3, 10, 30}},
			{Kind: "bipartite", Sizes: []int{3, 10}},
			{Kind: "livebipartite", Sizes: []int{3, 10}},
			{Kind: "unkbipartite", Sizes: []int{3, 10}},
			{Kind: "sparse", Sizes: []int{30, 100}, Degree: 3, Seeds: []int64{1, 2, 3}},
			{Kind: "dense", Sizes: []int{30, 100}, Percent: 3, Seeds: []int64{1, 2, 3}},
		},
	}
}

// Examples materializes every example the suite declares.
func (s *Suite) Examples() ([]*example.Example, error) {
	var out []*example.Example
	for _, fam := range s.Families {
		for _, n := range fam.Sizes {
			switch fam.Kind {
			case "line":
				out = append(out, Line(n))
			case "unkline":
				out = append(out, UnkLine(n))
			case "reverseline":
				out = append(out, ReverseLine(n))
			case "liveline":
				out = append(out, LiveLine(n))
			case "loop":
				out = append(out, Loop(n))
			case "unkloop":
				out = append(out, UnkLoop(n))
			case "complete":
				out = append(out, Complete(n))
			case "unkcomplete":
				out = append(out, UnkComplete(n))
			case "completeacyclic":
				out = append(out, CompleteAcyclic(n))
			case "bipartite":
				out = append(out, Bipartite(n, n))
			case "livebipartite":
				out = append(out, LiveBipartite(n, n))
			case "unkbipartite":
				out = append(out, UnkBipartite(n, n))
			case "sparse":
				for _, seed := range fam.Seeds {
					out = append(out, Sparse(n, fam.Degree, seed))
				}
			case "dense":
				for _, seed := range fam.Seeds {
					out = append(out, Dense(n, fam.Percent, seed))
				}
			default:
				return nil, fmt.Errorf("unknown family kind %q", fam.Kind)
			}
		}
	}
	return out, nil
}
