package treedata

import (
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/passivetree/tree"
)

// sample reads the bundled demo layout: nodes split across keystones,
// notables and smallNodes maps, edges in a separate connections map, and
// class starts declared on a classes map.
type sample struct{}

var sampleGroups = []string{"keystones", "notables", "smallNodes"}

func (sample) Name() string { return "sample" }

func (sample) Claims(doc gjson.Result) bool {
	for _, g := range append([]string{"connections"}, sampleGroups...) {
		if doc.Get(g).IsObject() {
			return true
		}
	}

	return false
}

func (sample) Convert(doc gjson.Result) (*tree.Definition, error) {
	def := &tree.Definition{Root: doc.Get("root").String()}
	index := make(map[string]int)
	ensure := func(id string) *tree.NodeDef {
		if i, ok := index[id]; ok {
			return &def.Nodes[i]
		}
		index[id] = len(def.Nodes)
		def.Nodes = append(def.Nodes, tree.NodeDef{ID: id})

		return &def.Nodes[len(def.Nodes)-1]
	}

	for _, group := range sampleGroups {
		doc.Get(group).ForEach(func(key, v gjson.Result) bool {
			id := v.Get("id").String()
			if id == "" {
				id = key.String()
			}
			ks, nt := kindFlags(v.Get("type"))
			nd := ensure(id)
			nd.Name = v.Get("name").String()
			nd.Keystone = ks || group == "keystones"
			nd.Notable = nt || group == "notables"
			nd.Stats = strs(v.Get("stats"))
			nd.Tags = strs(v.Get("tags"))
			nd.Offense = optFloat(v.Get("offense"))
			nd.Defense = optFloat(v.Get("defense"))

			return true
		})
	}

	doc.Get("classes").ForEach(func(key, v gjson.Result) bool {
		start := v.Get("startNode").String()
		if start == "" {
			return true
		}
		nd := ensure(start)
		nd.StartFor = append(nd.StartFor, key.String())

		return true
	})

	doc.Get("connections").ForEach(func(key, v gjson.Result) bool {
		nd := ensure(key.String())
		nd.Edges = append(nd.Edges, edgeIDs(v)...)

		return true
	})

	return def, nil
}
