// Package vbpp (vbpp) is a heuristic engine for the d-dimensional Vector Bin
// Packing Problem: given items with a non-negative size in every dimension
// and bins of identical per-dimension capacity, assign every item to exactly
// one bin, never exceeding capacity in any dimension, while trying to
// minimize the number of bins used.
//
// 📦 What is lvlath/vbpp?
//
//	A zero-network-dependency, deterministic library that brings together:
//
//	  • Primitives: immutable Item/Instance, mutable Bin with residual capacity
//	  • Weights, Measures & Scores: the parametric building blocks every
//	    heuristic is assembled from
//	  • Three algorithm families: Item-Centric Fit, Bin-Centric Score,
//	    and Multi-Bin iterative feasibility search
//
// ✨ Why choose vbpp?
//
//   - Deterministic   — same instance + same descriptor ⇒ same solution, always
//   - Composable      — dozens of named heuristics are one struct of
//     orthogonal policies, not a class lattice
//   - No exact solver — this is a heuristics library; it never claims
//     optimality, only feasibility and a bin count
//
// Under the hood, everything is organized under small, focused subpackages:
//
//	core/        — Item, Bin, Instance, Solution: the data model (§3)
//	wms/         — Weight, Measure and Score policies (§4.1-4.3)
//	bound/       — LB_sum and LB_clique lower bounds (§4.4)
//	itemcentric/ — FF, FFD, BFD, WFD, Lexico and Rank variants (§4.5)
//	bincentric/  — greedy best-item-for-current-bin heuristic (§4.6)
//	multibin/    — Pairing, WFDm, BFDm with an outer bin-count search (§4.7)
//	factory/     — turns a structured algorithm descriptor into a Strategy (§4.8)
//
// vbpp deliberately does not parse `.vbp` instance files, does not expose a
// CLI, and does not emit solution files: those are external collaborators
// that consume the Instance/Solution types this module exposes.
package vbpp
