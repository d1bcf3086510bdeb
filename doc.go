// Package factorgraph is your in-memory toolkit for exact inference on
// probabilistic graphical models — from discrete factor algebra to hybrid
// discrete/Gaussian conditionals.
//
// 🚀 What is factorgraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: discrete variable keys, cardinalities, assignments
//		• Decision trees: immutable, structurally shared factor tables
//		• Elimination: sum-product (posterior Bayes nets) & max-product (MPE)
//		• Lookup DAGs: one-pass decoding of the most probable explanation
//		• Hybrid conditionals: Gaussian leaves selected by discrete parents,
//		  with incremental specialization via Restrict
//
// ✨ Why choose factorgraph?
//
//   - Exact answers – variable elimination, no sampling, no approximation
//   - Rock-solid guarantees – immutable values, typed sentinel errors
//   - Deterministic – documented tie-breaking and zero-mass policies
//   - Extensible – elimination primitives accept externally chosen cliques
//
// Everything is organized under four subpackages:
//
//	core/     — variable keys, cardinalities & assignment values
//	decision/ — immutable, structurally shared decision trees
//	discrete/ — factors, factor graphs, elimination & MPE decoding
//	hybrid/   — Gaussian conditionals, mixtures & the Restrict algorithm
//
// Quick ASCII example:
//
//	    φ(A,B)   φ(B,C)
//	  A ─────── B ─────── C
//
//	a three-variable chain; eliminating B first yields a two-step Bayes net.
//
//	go get github.com/katalvlaran/factorgraph
package factorgraph
