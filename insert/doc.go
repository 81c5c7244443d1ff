// Package insert splices tag blocks into an editor buffer.
//
// Offsets are 0-based rune offsets. A Selection is the half-open range
// [Start, End); Start == End is a caret.
package insert
