package scoring

import (
	"math"
	"strings"

	"github.com/katalvlaran/passivetree/tree"
)

// Relevance multipliers.
const (
	StyleMismatch      = 0.05
	TypeMismatch       = 0.1
	TypeMatch          = 1.3
	WeaponMismatch     = 0.1
	WeaponMatch        = 1.4
	MinionOnly         = 0.02
	SelfDamageOnMinion = 0.2
	OverlapBonus       = 0.15
)

// MinRelevance is the threshold below which the allocator ignores a node.
const MinRelevance = 0.3

// Epsilon is the floor of every total.
const Epsilon = 0.001

// Build is the part of a build configuration the engine needs.
type Build struct {
	OffenseWeight float64
	DefenseWeight float64
	SkillTags     []string
	WeaponTags    []string
}

// Score is the rating of one node for one build.
type Score struct {
	Relevance float64 `json:"relevance"`
	Offense   float64 `json:"offense"`
	Defense   float64 `json:"defense"`
	Total     float64 `json:"total"`
}

type set map[string]struct{}

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

func (s set) has(k string) bool {
	_, ok := s[k]

	return ok
}

var (
	damageTypes   = newSet(tree.DamageTypes...)
	weaponClasses = newSet(tree.WeaponClasses...)
	elementals    = []string{tree.TagFire, tree.TagCold, tree.TagLightning}
)

// Engine scores nodes for a fixed build. It is immutable and safe for
// concurrent use.
type Engine struct {
	ow, dw     float64
	skill      set
	weapons    set
	matchable  set // skill ∪ weapons
	skillTypes set
	minion     bool
}

// New precomputes the tag sets of b. Tags are normalised (trimmed,
// lower-cased).
func New(b Build) *Engine {
	skill := tree.NormalizeTags(b.SkillTags)
	weapons := tree.NormalizeTags(b.WeaponTags)
	e := &Engine{
		ow:         b.OffenseWeight,
		dw:         b.DefenseWeight,
		skill:      newSet(skill...),
		weapons:    newSet(weapons...),
		matchable:  newSet(append(skill[:len(skill):len(skill)], weapons...)...),
		skillTypes: typesOf(skill),
	}
	e.minion = e.skill.has(tree.TagMinion)

	return e
}

// typesOf returns the damage types among tags, with elemental expanded.
func typesOf(tags []string) set {
	out := make(set)
	for _, t := range tags {
		if t == tree.TagElemental {
			for _, el := range elementals {
				out[el] = struct{}{}
			}
			continue
		}
		if damageTypes.has(t) {
			out[t] = struct{}{}
		}
	}

	return out
}

func intersects(a, b set) bool {
	for k := range a {
		if b.has(k) {
			return true
		}
	}

	return false
}

// exclusiveMismatch reports whether the node carries exactly one of x/y and
// the skill carries the other one but not the node's.
func (e *Engine) exclusiveMismatch(n *tree.Node, x, y string) bool {
	nx, ny := n.HasTag(x), n.HasTag(y)
	switch {
	case nx && !ny:
		return e.skill.has(y) && !e.skill.has(x)
	case ny && !nx:
		return e.skill.has(x) && !e.skill.has(y)
	}

	return false
}

// Relevance returns the multiplicative build-fit factor of n.
func (e *Engine) Relevance(n *tree.Node) float64 {
	r := 1.0
	if e.exclusiveMismatch(n, tree.TagAttack, tree.TagSpell) {
		r *= StyleMismatch
	}
	if e.exclusiveMismatch(n, tree.TagMelee, tree.TagRanged) {
		r *= StyleMismatch
	}

	if nodeTypes := typesOf(n.Tags); len(nodeTypes) > 0 && len(e.skillTypes) > 0 {
		if intersects(nodeTypes, e.skillTypes) {
			r *= TypeMatch
		} else {
			r *= TypeMismatch
		}
	}

	if len(e.weapons) > 0 {
		nodeWeapons := make(set)
		for _, t := range n.Tags {
			if weaponClasses.has(t) {
				nodeWeapons[t] = struct{}{}
			}
		}
		if len(nodeWeapons) > 0 {
			if intersects(nodeWeapons, e.weapons) {
				r *= WeaponMatch
			} else {
				r *= WeaponMismatch
			}
		}
	}

	if len(e.skill) > 0 {
		isMinion := n.HasTag(tree.TagMinion)
		switch {
		case isMinion && !e.minion:
			r *= MinionOnly
		case !isMinion && e.minion && n.Offense > 0:
			r *= SelfDamageOnMinion
		}
	}

	overlap := 0
	for _, t := range n.Tags {
		if e.matchable.has(t) {
			overlap++
		}
	}

	return r * (1 + OverlapBonus*float64(overlap))
}

// KindMultiplier is the total multiplier of a node kind.
func KindMultiplier(k tree.Kind) float64 {
	switch k {
	case tree.Keystone:
		return 3
	case tree.Notable:
		return 2
	}

	return 1
}

// Score rates n for the engine's build.
func (e *Engine) Score(n *tree.Node) Score {
	rel := e.Relevance(n)
	off := n.Offense * e.ow * rel
	def := n.Defense * e.dw

	return Score{
		Relevance: rel,
		Offense:   off,
		Defense:   def,
		Total:     math.Max((off+def)*KindMultiplier(n.Kind), Epsilon),
	}
}

// SkillTags returns the normalised skill tags, sorted.
func (e *Engine) SkillTags() []string { return keys(e.skill) }

// WeaponTags returns the normalised weapon tags, sorted.
func (e *Engine) WeaponTags() []string { return keys(e.weapons) }

func keys(s set) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}

	return tree.NormalizeTags(out)
}

// String renders the build tags for logs.
func (e *Engine) String() string {
	return "skill=[" + strings.Join(e.SkillTags(), ",") + "] weapon=[" + strings.Join(e.WeaponTags(), ",") + "]"
}
