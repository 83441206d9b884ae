package treedata

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/passivetree/tree"
)

// ErrUnknownFormat indicates that no registered adapter claims a document.
var ErrUnknownFormat = fmt.Errorf("%w: unrecognised tree document", tree.ErrGraphParse)

// Adapter converts one known document layout into a tree.Definition.
type Adapter interface {
	// Name is the stable adapter identifier.
	Name() string

	// Claims reports whether doc looks like this adapter's layout.
	Claims(doc gjson.Result) bool

	// Convert normalises doc. It is only called on claimed documents.
	Convert(doc gjson.Result) (*tree.Definition, error)
}

// Adapters returns the registered adapters in detection order.
func Adapters() []Adapter {
	return []Adapter{canonical{}, pob{}, sample{}}
}

// Lookup returns the adapter registered under name.
func Lookup(name string) (Adapter, bool) {
	for _, a := range Adapters() {
		if a.Name() == strings.ToLower(strings.TrimSpace(name)) {
			return a, true
		}
	}

	return nil, false
}

// first returns the first existing field among the given paths.
func first(r gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() {
			return v
		}
	}

	return gjson.Result{}
}

// strs reads an array of strings, or a single string, skipping blanks.
func strs(r gjson.Result) []string {
	if !r.Exists() {
		return nil
	}
	if !r.IsArray() {
		if s := strings.TrimSpace(r.String()); s != "" {
			return []string{s}
		}

		return nil
	}
	var out []string
	r.ForEach(func(_, v gjson.Result) bool {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}

		return true
	})

	return out
}

// edgeIDs reads an edge list whose entries are ids (strings or numbers) or
// {"id": ..., ...} objects.
func edgeIDs(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	r.ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			v = v.Get("id")
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}

		return true
	})

	return out
}

// optFloat returns a pointer to r's number, or nil when absent.
func optFloat(r gjson.Result) *float64 {
	if !r.Exists() || r.Type != gjson.Number {
		return nil
	}
	v := r.Float()

	return &v
}

// kindFlags interprets a textual kind ("keystone", "notable", ...).
func kindFlags(r gjson.Result) (keystone, notable bool) {
	if !r.Exists() {
		return false, false
	}
	k, err := tree.ParseKind(r.String())
	if err != nil {
		return false, false
	}

	return k == tree.Keystone, k == tree.Notable
}

// classNames maps class markers, given as names or ClassOrder indices, to
// class names.
func classNames(r gjson.Result) []string {
	if !r.Exists() {
		return nil
	}
	var out []string
	add := func(v gjson.Result) {
		if v.Type == gjson.Number {
			i := int(v.Int())
			if i >= 0 && i < len(tree.ClassOrder) {
				out = append(out, tree.ClassOrder[i])
			}

			return
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	if r.IsArray() {
		r.ForEach(func(_, v gjson.Result) bool {
			add(v)

			return true
		})
	} else {
		add(r)
	}

	return out
}
