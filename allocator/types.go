package allocator

// WarningKind classifies a non-fatal event of a run.
type WarningKind string

// Warning kinds.
const (
	WarnKeystoneNotFound    WarningKind = "keystone_not_found"
	WarnKeystoneUnreachable WarningKind = "keystone_unreachable"
	WarnKeystoneOverBudget  WarningKind = "keystone_over_budget"
	WarnIterationCap        WarningKind = "iteration_cap"
)

// Warning is a non-fatal event attached to the run outcome.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	NodeID  string      `json:"nodeId,omitempty"`
	Message string      `json:"message"`
}

// Allocation is the outcome of one run.
type Allocation struct {
	// Start is the free class start node.
	Start string

	// Nodes lists allocated ids in allocation order, Start first.
	Nodes []string

	// Spent is the number of points consumed; Start is not counted.
	Spent int

	// Budget is the point budget of the run.
	Budget int

	Warnings []Warning

	// Iterations counts Phase B loop iterations.
	Iterations int

	// Swaps counts applied refinement swaps.
	Swaps int
}
