// Package layout implements pure-Go flexbox and grid layout engines for
// terminal UIs.
//
// Flex containers support row/column directions, justify and align modes,
// padding, margin, gap, min/max constraints, percentage and fixed
// dimensions, flex-basis/grow/shrink, and intrinsic sizing. Grid containers
// support fixed, percentage, auto, and fractional (Fr) tracks, explicit
// item placement with spans, and row-major auto-placement.
// Types are re-exported through the root weft package for public consumption.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes a [Layout] for each node in two passes: a sizing pass that
// resolves every node's size and position relative to its parent, and a
// positioning pass that resolves absolute screen coordinates.
package layout
