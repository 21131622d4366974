// Package tspvisualization is the solving core behind the TSP visualizer:
// strategies, metrics and budgets for computing short visiting orders over
// 2-D point sets.
//
// What lives here:
//
//	A small, deterministic, pure-Go engine that brings together:
//		• Geometry: immutable 2-D vectors with Euclidean & Manhattan metrics
//		• Exact search: lexicographic brute force for small instances
//		• Heuristics: nearest-neighbor construction (single- or all-starts)
//		• Local search: budgeted 2-opt (first- or best-improvement)
//		• Strategy selection: Auto routing by instance size, with safety caps
//		• Background offloading: a job runner for interactive callers
//
// Design guarantees:
//
//   - Deterministic by default — identical inputs yield identical results
//   - Budget-aware — time limits and iteration caps return the best tour
//     found so far, never an error, flagged via Result.Converged
//   - Stateless — concurrent independent solves never interfere
//   - Pure Go — no cgo in the engine; heavy lifting stays allocation-lean
//
// Everything is organized under four packages:
//
//	geom/        — 2-D vector primitives shared by the engine and callers
//	tsp/         — the solving engine: Solve, TourLength, MST overlay
//	runner/      — submit/await/cancel solve jobs off the interactive loop
//	cmd/tspbench — benchmarking & file-solving CLI
//
// Rendering, point editing and persistence are external collaborators: they
// marshal points and options into tsp.Solve and consume the resulting tour.
//
//	go get github.com/IotA-asce/TSP-visualization/tsp
package tspvisualization
