package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// HCLLoader decodes ".hcl" profiles made of labelled build blocks.
type HCLLoader struct{}

type hclFile struct {
	Builds []*hclBuild `hcl:"build,block"`
}

type hclBuild struct {
	Name              string   `hcl:"name,label"`
	Class             string   `hcl:"class"`
	OffenseWeight     *float64 `hcl:"offense_weight,optional"`
	DefenseWeight     *float64 `hcl:"defense_weight,optional"`
	PointBudget       *int     `hcl:"point_budget,optional"`
	RequiredKeystones []string `hcl:"required_keystones,optional"`
	SkillTags         []string `hcl:"skill_tags,optional"`
	WeaponTags        []string `hcl:"weapon_tags,optional"`
}

// Extensions implements FileLoader.
func (HCLLoader) Extensions() []string { return []string{".hcl"} }

// Decode implements FileLoader. Expressions are evaluated against
// ks.EvalContext, so keystone.<slug> references resolve to node ids and
// unknown slugs fail to decode. Unknown attributes and blocks are rejected.
func (HCLLoader) Decode(filename string, src []byte, ks Keystones) ([]Entry, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrDecode, filename, diags)
	}

	var root hclFile
	diags = gohcl.DecodeBody(file.Body, ks.EvalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrDecode, filename, diags)
	}

	entries := make([]Entry, 0, len(root.Builds))
	for _, b := range root.Builds {
		entries = append(entries, Entry{
			Name:              b.Name,
			Class:             b.Class,
			OffenseWeight:     b.OffenseWeight,
			DefenseWeight:     b.DefenseWeight,
			PointBudget:       b.PointBudget,
			RequiredKeystones: b.RequiredKeystones,
			SkillTags:         b.SkillTags,
			WeaponTags:        b.WeaponTags,
		})
	}

	return entries, nil
}
