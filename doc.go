// Package weft provides a declarative terminal UI toolkit for Go.
//
// Users import this single package for the complete public API:
// app lifecycle, view declarations, layout types, events, and reactive state.
// Layout runs a flexbox and grid engine over a node tree, view declarations
// are diffed into minimal patches, and a dirty-region renderer repairs only
// the damaged parts of the cell buffer each frame.
package weft
