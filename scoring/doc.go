// Package scoring assigns weights to alignment columns.
//
// What:
//
//   - PairwiseScore(a, b): substitution score of two residues, the gap cost
//     when exactly one side is the Gap symbol, 0 when both are gaps.
//   - SumOfPairs(a, b, c): PairwiseScore(a,b) + PairwiseScore(b,c) + PairwiseScore(a,c),
//     the weight of a three-symbol alignment column.
//   - Model: the same two functions over a custom Matrix and gap cost.
//
// The default model uses the BLOSUM62 substitution table and a linear gap
// cost of -6. Lookups fold ASCII case; symbols outside the table alphabet
// score UnknownScore against any real residue, so unvalidated input never
// fails a lookup.
//
// Complexity:
//
//   - Every function is O(1) time and allocation free.
//
// Determinism:
//
//   - All tables are read-only package data; a Model never changes after
//     construction and is safe for concurrent use.
package scoring
