// Package treedata converts raw tree documents into the canonical
// tree.Definition through a small set of named adapters.
//
// Each adapter recognises one known document layout and normalises its
// field-name variants; nothing outside this package ever sees a legacy field
// name. Registered adapters, tried in order:
//
//	canonical – {"nodes": [ {...}, ... ], "root": "..."}
//	pob       – {"nodes": {"<id>": {"dn","sd","ks","not","out","in",...}}}
//	sample    – {"classes", "keystones", "notables", "smallNodes", "connections"}
//
// Documents are sniffed with gjson, so an adapter only reads the paths it
// understands and unknown fields are ignored.
//
// Errors:
//
//	Every failure wraps tree.ErrGraphParse; ErrUnknownFormat additionally marks
//	documents no adapter claims.
package treedata
