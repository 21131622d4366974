// Package geom provides the 2-D vector primitives shared by the TSP engine
// and its callers (renderers, input layers, benchmarks).
//
// The central type is Vec — an immutable pair of finite float64 coordinates.
// All operations return new values; nothing in this package mutates state,
// allocates beyond its return value, or panics on user input. Degenerate
// requests (division by zero, normalizing the zero vector) surface as
// sentinel errors.
//
// Vec is deliberately tiny: it carries exactly the operations the visualizer
// and the solvers need (arithmetic, norms, Euclidean and Manhattan
// distances) and nothing more.
package geom
