package textanim

import "github.com/gogpu/anim"

// ExpressionSelector is a scripted selector. Expressions are not
// evaluated: the selector is kept in the graph so documents round-trip,
// but it never contributes to the combined factor.
type ExpressionSelector struct {
	BasedOn    BasedOn
	Mode       SelectorMode
	Expression string
}

func (*ExpressionSelector) isSelector() {}

// ExcludeVaryingRanges does nothing.
func (s *ExpressionSelector) ExcludeVaryingRanges(*[]anim.TimeRange) {}

// Verify returns true for any non-nil selector.
func (s *ExpressionSelector) Verify() bool { return s != nil }
