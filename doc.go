// Package align3 computes optimal three-way alignments of biological
// sequences as maximum-weight paths through a product DAG.
//
// 🚀 What is align3?
//
//	A small, dense-array engine that brings together:
//		• Scoring: BLOSUM62 substitution, gap cost, sum-of-pairs columns
//		• Builder: three sequences → full (n1+1)(n2+1)(n3+1) product DAG
//		• Solver: one topological DP pass, start/end constraints, path rebuild
//		• Wavefront solving: level-parallel DP with identical results
//		• I/O: FASTA input, text graph interchange, XML reports, HCL settings
//
// ✨ Why choose align3?
//
//   - Exact – every alignment is a path; the DP visits each edge once
//   - Bounded – vertex and edge ceilings are checked before allocating
//   - Index-addressed – vertices are int32 ids, no label maps on the hot path
//
// Under the hood, everything is organized into subpackages:
//
//	scoring/     - substitution matrix, gap cost, PairwiseScore & SumOfPairs
//	sequence/    - immutable sequences, FASTA loading
//	builder/     - product DAG expansion, Dims geometry, resource ceilings
//	dag/         - arena graph, Solve, wavefront solver, label histogram
//	interchange/ - V/E text form of a graph, reader & writer
//	report/      - XML result block
//	config/      - HCL settings file
//	cmd/align3/  - command-line entry point
//
// Quick ASCII example, one alignment column per edge:
//
//	(0,0,0) ──AAA──▶ (1,1,1) ──PWC──▶ (2,2,2)
//
//	A P
//	A W
//	A C
//
//	go install github.com/katalvlaran/align3/cmd/align3@latest
package align3
