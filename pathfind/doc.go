// Package pathfind answers "which unallocated nodes must be taken to reach a
// target" with a multi-source breadth-first search over a tree.Graph.
//
// What
//
//   - Seeds the FIFO queue with every allocated node at depth 0 and pre-marks
//     them visited, so expansion never re-enters owned territory.
//   - Returns a Result with:
//   - Order:  visit sequence (sources first, in sorted id order)
//   - Depth:  node → number of new nodes needed to reach it
//   - Parent: node → predecessor on its shortest path
//   - Result.PathTo(target) lists the newly required ids from the frontier
//     outward, target last. len(path) is the point cost of the target.
//
// Outcomes of PathTo
//
//	target allocated   → empty path, nil error
//	target not reached → ErrUnreachable
//	target not in tree → ErrTargetNotFound
//
// Determinism
//
//	Sources are enqueued in sorted id order and tree.Node.Neighbors is sorted,
//	so Order, Depth and Parent are reproducible for equal inputs.
//
// Options
//
//	WithContext          cancellation, checked once per dequeue
//	WithMaxDepth(d)      stop expanding beyond d new nodes (d == 0: no limit)
//	WithFilterNeighbor   skip individual steps curr → neighbor
//	WithOnVisit          per-visit hook; an error aborts the search
//
// Complexity (V nodes, E edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package pathfind
