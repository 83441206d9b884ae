package profile

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/passivetree/tree"
)

// Keystones maps keystone slugs to node ids.
type Keystones map[string]string

// KeystoneIndex indexes the keystones of g by the slug of their name, or of
// their id when unnamed. On slug collisions the lowest id wins.
func KeystoneIndex(g *tree.Graph) Keystones {
	ks := make(Keystones)
	if g == nil {
		return ks
	}
	nodes := g.Keystones()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	for _, n := range nodes {
		label := n.Name
		if label == "" {
			label = n.ID
		}
		s := Slug(label)
		if s == "" {
			continue
		}
		if _, taken := ks[s]; !taken {
			ks[s] = n.ID
		}
	}

	return ks
}

// Slug lower-cases name and joins its letter and digit runs with '_':
// "Eldritch Battery" becomes "eldritch_battery".
func Slug(name string) string {
	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(name) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			gap = b.Len() > 0
			continue
		}
		if gap {
			b.WriteByte('_')
			gap = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Resolve maps a keystone reference to a node id. A reference may be a
// "keystone.<slug>" string, a slug or a display name; anything else is
// returned unchanged and treated as an id.
func (k Keystones) Resolve(ref string) string {
	s := Slug(strings.TrimPrefix(ref, "keystone."))
	if id, ok := k[s]; ok {
		return id
	}

	return ref
}

// Slugs returns the sorted slugs.
func (k Keystones) Slugs() []string {
	out := make([]string, 0, len(k))
	for s := range k {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// EvalContext exposes the index as the HCL object variable "keystone".
func (k Keystones) EvalContext() *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(k))
	for s, id := range k {
		vals[s] = cty.StringVal(id)
	}
	obj := cty.EmptyObjectVal
	if len(vals) > 0 {
		obj = cty.ObjectVal(vals)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"keystone": obj},
	}
}
