package statline

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder replaces the first numeric token when building a grouping key.
const Placeholder = "#"

// numberPattern matches a signed decimal token such as "+10", "-5" or "1.5".
var numberPattern = regexp.MustCompile(`[+-]?\d+(?:\.\d+)?`)

// FirstNumber returns the first numeric token of line.
// The sign is kept: "-10% to Fire Resistance" yields -10.
func FirstNumber(line string) (float64, bool) {
	loc := numberPattern.FindStringIndex(line)
	if loc == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(line[loc[0]:loc[1]], 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// MaxNumber returns the largest numeric token across all lines.
// ok is false when no line carries a number.
func MaxNumber(lines []string) (top float64, ok bool) {
	top = math.Inf(-1)
	for _, line := range lines {
		for _, tok := range numberPattern.FindAllString(line, -1) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				continue
			}
			if v > top {
				top = v
			}
			ok = true
		}
	}
	if !ok {
		return 0, false
	}

	return top, true
}

// GroupKey splits line into a grouping key and its numeric value.
// The key is the trimmed line with its first numeric token replaced by
// Placeholder, so "+10% Fire Damage" and "+25% Fire Damage" share the key
// "#% Fire Damage". ok is false for lines without a number.
func GroupKey(line string) (key string, value float64, ok bool) {
	line = strings.TrimSpace(line)
	loc := numberPattern.FindStringIndex(line)
	if loc == nil {
		return "", 0, false
	}
	value, err := strconv.ParseFloat(line[loc[0]:loc[1]], 64)
	if err != nil {
		return "", 0, false
	}
	key = line[:loc[0]] + Placeholder + line[loc[1]:]

	return key, value, true
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
