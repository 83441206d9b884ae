package statline

import (
	"regexp"
	"strconv"
	"strings"
)

// Attributes is a flat strength/dexterity/intelligence bonus.
type Attributes struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Int int `json:"int"`
}

// IsZero reports whether no attribute is granted.
func (a Attributes) IsZero() bool { return a.Str == 0 && a.Dex == 0 && a.Int == 0 }

// Add returns the component-wise sum.
func (a Attributes) Add(b Attributes) Attributes {
	return Attributes{Str: a.Str + b.Str, Dex: a.Dex + b.Dex, Int: a.Int + b.Int}
}

var attributePattern = regexp.MustCompile(
	`(?i)([+-]?\d+)\s+to\s+(all attributes|strength|dexterity|intelligence)(?:\s+and\s+(strength|dexterity|intelligence))?`)

// ParseAttributes sums every flat attribute bonus found in stats.
func ParseAttributes(stats []string) Attributes {
	var a Attributes
	for _, line := range stats {
		for _, m := range attributePattern.FindAllStringSubmatch(line, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			for _, name := range m[2:] {
				a = a.Add(grant(strings.ToLower(name), n))
			}
		}
	}

	return a
}

func grant(name string, n int) Attributes {
	switch name {
	case "all attributes":
		return Attributes{Str: n, Dex: n, Int: n}
	case "strength":
		return Attributes{Str: n}
	case "dexterity":
		return Attributes{Dex: n}
	case "intelligence":
		return Attributes{Int: n}
	}

	return Attributes{}
}
