package statline

import "strings"

// DefaultMagnitude is used for lines that name a category but carry no number.
const DefaultMagnitude = 10.0

// Scores is the offense/defense value derived from a list of stat lines.
type Scores struct {
	Offense float64
	Defense float64
}

// Category is one keyword family contributing to offense or defense.
// A line matches when it contains any of Keywords (lower-cased) and none of
// Exclude.
type Category struct {
	Name        string
	Keywords    []string
	Exclude     []string
	Coefficient float64
	Defensive   bool
}

// Categories lists the recognised keyword families in evaluation order.
var Categories = []Category{
	{Name: "damage", Keywords: []string{"damage"}, Exclude: []string{"damage taken"}, Coefficient: 1.0},
	{Name: "attack speed", Keywords: []string{"attack speed"}, Coefficient: 1.2},
	{Name: "cast speed", Keywords: []string{"cast speed"}, Coefficient: 1.2},
	{Name: "critical", Keywords: []string{"critical"}, Coefficient: 1.1},
	{Name: "penetration", Keywords: []string{"penetrat"}, Coefficient: 1.3},
	{Name: "accuracy", Keywords: []string{"accuracy"}, Coefficient: 0.6},

	{Name: "life", Keywords: []string{"life"}, Coefficient: 1.0, Defensive: true},
	{Name: "armour", Keywords: []string{"armour", "armor"}, Coefficient: 0.8, Defensive: true},
	{Name: "evasion", Keywords: []string{"evasion"}, Coefficient: 0.8, Defensive: true},
	{Name: "energy shield", Keywords: []string{"energy shield"}, Coefficient: 1.0, Defensive: true},
	{Name: "resistance", Keywords: []string{"resist"}, Coefficient: 0.7, Defensive: true},
	{Name: "block", Keywords: []string{"block"}, Coefficient: 1.2, Defensive: true},
	{Name: "reduced damage taken", Keywords: []string{"reduced damage taken"}, Coefficient: 1.5, Defensive: true},
	{Name: "regeneration", Keywords: []string{"regenerat"}, Coefficient: 0.6, Defensive: true},
}

// Matches reports whether the lower-cased line belongs to the category.
func (c Category) Matches(lower string) bool {
	for _, ex := range c.Exclude {
		if strings.Contains(lower, ex) {
			return false
		}
	}
	for _, kw := range c.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}

// Score derives offense and defense from stat lines. Each matching category
// contributes magnitude/10 × coefficient, where magnitude is the first numeric
// token of the line (DefaultMagnitude when absent). A category counts at most
// once per line. Both sums are rounded to one decimal.
func Score(stats []string) Scores {
	var s Scores
	for _, line := range stats {
		lower := strings.ToLower(line)
		magnitude, ok := FirstNumber(line)
		if !ok {
			magnitude = DefaultMagnitude
		}
		for _, c := range Categories {
			if !c.Matches(lower) {
				continue
			}
			v := magnitude / 10 * c.Coefficient
			if c.Defensive {
				s.Defense += v
			} else {
				s.Offense += v
			}
		}
	}
	s.Offense = Round1(s.Offense)
	s.Defense = Round1(s.Defense)

	return s
}
