// Package jval provides a typed JSON value model for the wire codec.
//
// The encoder builds jval values instead of map[string]any so that object
// key order is preserved (the wire format pins a fixed key order per node
// kind) and the decoder parses into jval values so that number literals
// survive exactly as written, with no float round-tripping.
//
// Key design constraints:
//   - Value is a sealed interface; only the six JSON kinds implement it
//   - Object preserves insertion order
//   - Number holds the source literal, never a parsed float
//   - Marshal output is compact with HTML escaping disabled
package jval
