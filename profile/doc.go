// Package profile loads build profiles: named optimizer.Config values kept in
// HCL or YAML files.
//
// HCL profiles are decoded with an evaluation context that exposes every
// keystone of the tree as keystone.<slug>, so a profile can write
//
//	build "battery-witch" {
//	  class              = "Witch"
//	  offense_weight     = 0.8
//	  point_budget       = 60
//	  required_keystones = [keystone.eldritch_battery]
//	  skill_tags         = ["spell", "lightning"]
//	}
//
// YAML profiles carry the same fields under a top-level builds list; keystone
// references there may be ids, display names or keystone.<slug> strings.
//
// Omitted weights default to DefaultOffenseWeight with the defense weight
// completing the sum to 1; an omitted budget defaults to DefaultPointBudget.
// Loaded configs are validated before they are returned.
package profile
