package prim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupOperator(t *testing.T) {
	info, ok := LookupOperator("operator+", 2)
	require.True(t, ok)
	assert.Equal(t, 11, info.Precedence)
	assert.Equal(t, LeftAssociative, info.Associativity)
	assert.Equal(t, " + ", info.Infix)

	info, ok = LookupOperator("operator+", 1)
	require.True(t, ok)
	assert.Equal(t, 14, info.Precedence)
	assert.Equal(t, RightAssociative, info.Associativity)
	assert.Equal(t, "+", info.Prefix)

	_, ok = LookupOperator("operator+", 3)
	assert.False(t, ok)

	_, ok = LookupOperator("sin", 1)
	assert.False(t, ok)
}

func TestTernaryOperator(t *testing.T) {
	info, ok := LookupOperator("operator?:", 3)
	require.True(t, ok)
	assert.Equal(t, 1, info.Precedence)
	assert.Equal(t, RightAssociative, info.Associativity)
	assert.Equal(t, " ? ", info.Infix)
	assert.Equal(t, " : ", info.Infix2)
}

func TestOperatorPrecedenceOrdering(t *testing.T) {
	// Spot-check the precedence ladder: ternary lowest, unary highest,
	// ** binds tighter than * which binds tighter than +.
	ternary := Operators[OperatorKey{"operator?:", 3}]
	add := Operators[OperatorKey{"operator+", 2}]
	mul := Operators[OperatorKey{"operator*", 2}]
	pow := Operators[OperatorKey{"operator**", 2}]
	not := Operators[OperatorKey{"operator!", 1}]

	assert.Less(t, ternary.Precedence, add.Precedence)
	assert.Less(t, add.Precedence, mul.Precedence)
	assert.Less(t, mul.Precedence, pow.Precedence)
	assert.Less(t, pow.Precedence, not.Precedence)
}
