// Package maze finds a shortest path between a source node and the
// nearest of a set of target nodes on a gridgraph.Graph, by BFS wave
// propagation followed by DFS backtracking (SPEC_FULL.md §4.5
// "MazeSolver").
//
// What & Why
//
//   - BFSWave floods outward from source, recording each visited
//     node's Step (its distance from source) until it first reaches
//     any node in targets. It returns that target node, not a path —
//     Step values are the only state backtracking needs.
//   - DFSBacktrack walks backward from the found target toward
//     source, at each node only descending into a neighbor whose Step
//     is exactly one less than the current node's, which guarantees
//     the reconstructed path is a shortest path (any such neighbor
//     chain strictly decreases Step by exactly one per hop, so it
//     cannot be longer than BFS's own distance).
//   - Both passes reset Visited (and BFSWave additionally resets Step)
//     across every node in the graph before running, since the same
//     *gridgraph.Graph fields are reused across repeated two-pin
//     routes within one net.
//
// Errors
//
//   - ErrNoPath is returned by BFSWave when no target is reachable
//     from source, and by DFSBacktrack when the recorded Step values
//     admit no monotonically-decreasing chain back to source (which
//     should not happen for a target BFSWave actually returned, but is
//     checked defensively since the two passes operate on shared
//     mutable node state).
package maze
