package treedata

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/passivetree/tree"
)

// Detect returns the first registered adapter that claims raw.
func Detect(raw []byte) (Adapter, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", tree.ErrGraphParse)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top-level value is not an object", tree.ErrGraphParse)
	}
	for _, a := range Adapters() {
		if a.Claims(doc) {
			return a, nil
		}
	}

	return nil, ErrUnknownFormat
}

// Decode converts a raw tree document with the first adapter that claims it.
func Decode(raw []byte) (*tree.Definition, error) {
	a, err := Detect(raw)
	if err != nil {
		return nil, err
	}
	def, err := a.Convert(gjson.ParseBytes(raw))
	if err != nil {
		return nil, err
	}
	if len(def.Nodes) == 0 {
		return nil, fmt.Errorf("%w: %s document has no nodes", tree.ErrGraphParse, a.Name())
	}

	return def, nil
}

// DecodeFile reads and decodes the tree document at path.
func DecodeFile(path string) (*tree.Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treedata: read %s: %w", path, err)
	}

	return Decode(raw)
}

// Load reads, decodes and builds the tree at path.
func Load(path string, opts ...tree.Option) (*tree.Graph, error) {
	def, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	return tree.Build(def, opts...)
}
