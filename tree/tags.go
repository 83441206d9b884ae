package tree

import (
	"regexp"
	"sort"
	"strings"
)

// Tag names shared with the scoring engine.
const (
	TagAttack         = "attack"
	TagSpell          = "spell"
	TagMelee          = "melee"
	TagRanged         = "ranged"
	TagMinion         = "minion"
	TagElemental      = "elemental"
	TagFire           = "fire"
	TagCold           = "cold"
	TagLightning      = "lightning"
	TagPhysical       = "physical"
	TagChaos          = "chaos"
	TagCritical       = "critical"
	TagDamageOverTime = "dot"
)

// DamageTypes are the concrete damage type tags. "elemental" expands to the
// first three.
var DamageTypes = []string{TagFire, TagCold, TagLightning, TagPhysical, TagChaos}

// WeaponClasses are the weapon tags recognised in stat text and build configs.
var WeaponClasses = []string{
	"axe", "bow", "claw", "crossbow", "dagger", "mace", "quarterstaff",
	"sceptre", "shield", "spear", "staff", "sword", "unarmed", "wand",
}

// vocabulary maps every tag to the word prefixes that imply it. Matching is
// case-insensitive and anchored at a word boundary, so "bow" does not match
// "crossbow" and "staff" does not match "quarterstaff".
var vocabulary = []struct {
	tag      string
	keywords []string
}{
	{TagPhysical, []string{"physical"}},
	{TagFire, []string{"fire", "ignite", "burning"}},
	{TagCold, []string{"cold", "freeze", "chill"}},
	{TagLightning, []string{"lightning", "shock"}},
	{TagChaos, []string{"chaos", "poison"}},
	{TagElemental, []string{"elemental"}},

	{TagAttack, []string{"attack", "melee", "strike", "slam", "bow", "crossbow", "sword", "axe", "mace", "dagger", "claw", "spear", "quarterstaff"}},
	{TagSpell, []string{"spell", "cast"}},
	{TagMelee, []string{"melee", "strike", "slam", "sword", "axe", "mace", "dagger", "claw", "quarterstaff", "unarmed"}},
	{TagRanged, []string{"projectile", "bow", "crossbow", "arrow", "bolt"}},
	{"projectile", []string{"projectile", "arrow", "bolt"}},
	{"aoe", []string{"area of effect", "radius"}},
	{TagMinion, []string{"minion", "zombie", "skeleton", "spectre"}},
	{TagCritical, []string{"critical"}},
	{TagDamageOverTime, []string{"damage over time", "burning", "bleed", "poison", "ignite"}},
	{"bleed", []string{"bleed"}},
	{"poison", []string{"poison"}},
	{"ignite", []string{"ignite"}},

	{"life", []string{"life"}},
	{"mana", []string{"mana"}},
	{"energyshield", []string{"energyshield"}},
	{"armour", []string{"armour", "armor"}},
	{"evasion", []string{"evasion"}},
	{"resistance", []string{"resist"}},
	{"block", []string{"block"}},

	{"strength", []string{"strength", "all attributes"}},
	{"dexterity", []string{"dexterity", "all attributes"}},
	{"intelligence", []string{"intelligence", "all attributes"}},

	{"axe", []string{"axe"}},
	{"bow", []string{"bow"}},
	{"claw", []string{"claw"}},
	{"crossbow", []string{"crossbow"}},
	{"dagger", []string{"dagger"}},
	{"mace", []string{"mace"}},
	{"quarterstaff", []string{"quarterstaff"}},
	{"sceptre", []string{"sceptre"}},
	{"shield", []string{"shield"}},
	{"spear", []string{"spear"}},
	{"staff", []string{"staff"}},
	{"sword", []string{"sword"}},
	{"unarmed", []string{"unarmed"}},
	{"wand", []string{"wand"}},
}

type tagMatcher struct {
	tag string
	re  *regexp.Regexp
}

var tagMatchers = compileVocabulary()

func compileVocabulary() []tagMatcher {
	out := make([]tagMatcher, 0, len(vocabulary))
	for _, v := range vocabulary {
		quoted := make([]string, len(v.keywords))
		for i, kw := range v.keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		out = append(out, tagMatcher{
			tag: v.tag,
			re:  regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)`),
		})
	}

	return out
}

// ExtractTags keyword-matches stat text and an optional icon/category hint
// against the tag vocabulary. The result is sorted and de-duplicated.
func ExtractTags(stats []string, hint string) []string {
	text := strings.ToLower(strings.Join(stats, "\n") + "\n" + hint)
	// "energy shield" is not a shield and a critical strike is not a melee strike.
	text = strings.ReplaceAll(text, "energy shield", "energyshield")
	text = strings.ReplaceAll(text, "critical strike", "critical")

	set := make(map[string]struct{})
	for _, m := range tagMatchers {
		if m.re.MatchString(text) {
			set[m.tag] = struct{}{}
		}
	}

	return sortedSet(set)
}

// NormalizeTags lower-cases, trims and de-duplicates tags, dropping empties.
func NormalizeTags(tags []string) []string {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}

	return sortedSet(set)
}

func mergeTags(a, b []string) []string {
	return NormalizeTags(append(append([]string(nil), a...), b...))
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
