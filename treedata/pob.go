package treedata

import (
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/passivetree/tree"
)

// pob reads the community tree export: a "nodes" object keyed by id with
// terse field names and several historical aliases.
type pob struct{}

func (pob) Name() string { return "pob" }

func (pob) Claims(doc gjson.Result) bool { return doc.Get("nodes").IsObject() }

func (pob) Convert(doc gjson.Result) (*tree.Definition, error) {
	def := &tree.Definition{Root: doc.Get("root").String()}
	doc.Get("nodes").ForEach(func(key, v gjson.Result) bool {
		id := key.String()
		if nid := v.Get("id"); nid.Exists() && nid.String() != "" {
			id = nid.String()
		}
		edges := append(edgeIDs(v.Get("out")), edgeIDs(v.Get("in"))...)
		def.Nodes = append(def.Nodes, tree.NodeDef{
			ID:       id,
			Name:     first(v, "dn", "name").String(),
			Keystone: first(v, "ks", "isKeystone").Bool(),
			Notable:  first(v, "not", "isNotable").Bool(),
			Stats:    strs(first(v, "sd", "stats")),
			Icon:     v.Get("icon").String(),
			Edges:    edges,
			StartFor: classNames(first(v, "classStartIndex", "classesStart")),
			Attributes: tree.Attributes{
				Str: int(v.Get("sa").Int()),
				Dex: int(v.Get("da").Int()),
				Int: int(v.Get("ia").Int()),
			},
		})

		return true
	})

	return def, nil
}
