package treedata

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/passivetree/tree"
)

// canonical reads the normalised schema: a "nodes" array of entries.
type canonical struct{}

func (canonical) Name() string { return "canonical" }

func (canonical) Claims(doc gjson.Result) bool { return doc.Get("nodes").IsArray() }

func (canonical) Convert(doc gjson.Result) (*tree.Definition, error) {
	def := &tree.Definition{Root: doc.Get("root").String()}
	var err error
	i := 0
	doc.Get("nodes").ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			err = fmt.Errorf("%w: canonical node #%d is not an object", tree.ErrGraphParse, i)

			return false
		}
		i++
		ks, nt := kindFlags(v.Get("kind"))
		def.Nodes = append(def.Nodes, tree.NodeDef{
			ID:       v.Get("id").String(),
			Name:     v.Get("name").String(),
			Keystone: ks || v.Get("keystone").Bool(),
			Notable:  nt || v.Get("notable").Bool(),
			Stats:    strs(v.Get("stats")),
			Tags:     strs(v.Get("tags")),
			Icon:     v.Get("icon").String(),
			Edges:    edgeIDs(v.Get("edges")),
			StartFor: classNames(v.Get("startFor")),
			Attributes: tree.Attributes{
				Str: int(v.Get("attributes.str").Int()),
				Dex: int(v.Get("attributes.dex").Int()),
				Int: int(v.Get("attributes.int").Int()),
			},
			Offense: optFloat(v.Get("offense")),
			Defense: optFloat(v.Get("defense")),
		})

		return true
	})
	if err != nil {
		return nil, err
	}

	return def, nil
}
