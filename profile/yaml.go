package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLoader decodes ".yaml" and ".yml" profiles with a top-level builds list.
type YAMLLoader struct{}

type yamlFile struct {
	Builds []yamlBuild `yaml:"builds"`
}

type yamlBuild struct {
	Name              string   `yaml:"name"`
	Class             string   `yaml:"class"`
	OffenseWeight     *float64 `yaml:"offense_weight"`
	DefenseWeight     *float64 `yaml:"defense_weight"`
	PointBudget       *int     `yaml:"point_budget"`
	RequiredKeystones []string `yaml:"required_keystones"`
	SkillTags         []string `yaml:"skill_tags"`
	WeaponTags        []string `yaml:"weapon_tags"`
}

// Extensions implements FileLoader.
func (YAMLLoader) Extensions() []string { return []string{".yaml", ".yml"} }

// Decode implements FileLoader. Unknown keys are rejected.
func (YAMLLoader) Decode(filename string, src []byte, _ Keystones) ([]Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var root yamlFile
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, err)
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
