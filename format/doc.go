// Package format names the text formats a tag tree can be written in.
//
// SNBT is the lossless format: every variant keeps its width and can be
// read back by package parse. JSON and YAML are export views which keep
// the structure but not the variant of each number.
//
// # Related Packages
//
//   - github.com/signadot/tagtree/parse - Parse SNBT text to a tree
//   - github.com/signadot/tagtree/encode - Encode a tree to text
package format
