// Package textanim computes per-character animation strength for text
// animators.
//
// A text animator owns one or more selectors. Each selector maps a
// character index to a factor in [-1, 1]; the factors of all selectors
// are folded together by [Overlay] according to each selector's mode.
// Renderers multiply an animator's typography and color properties by
// the combined factor of every character.
//
// The Range selector reproduces the shapes of the authoring tool,
// including its seeded random character order. The Wiggly selector is a
// deterministic approximation and always reports a bias flag so callers
// can tell its output is not an exact match.
package textanim
