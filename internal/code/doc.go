// Package code models the Bacon-Shor lattice and tracks how a sequence
// of two-qubit edge measurements reshapes the active stabilizer group.
//
//   - [Lattice]: qubit vertex layout, edge enumeration, click resolution
//   - [Measurement]: a committed edge measurement with its derived basis
//   - [Tracker]: per-time-step stabilizer group maintenance
//
// Basis convention: measuring a vertical neighbor pair projects onto XX,
// a horizontal pair onto ZZ. When a new measurement anti-commutes with
// existing generators, the tracker first merges same-type generator
// pairs whose combined support stays inside one gauge strip (two rows
// for X-type, two columns for Z-type), then discards whatever still
// anti-commutes, and finally eliminates redundant generators by
// dividing out contained ones.
package code
