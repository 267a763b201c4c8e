package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitPreOrder(t *testing.T) {
	intType := &IntType{Name: "int", Bits: 32, Signed: true}
	obj := NewObject("reg", intType, 2)

	set := &SetInstruction{
		LHS: &Reference{Target: obj, Type: intType,
			Indices: []*IntLiteral{{Value: 0, Type: intType}}},
		RHS: &IntLiteral{Value: 7, Type: intType},
	}
	set.Condition = &BitLiteral{Value: true, Type: &BitType{Name: "bit"}}

	var kinds []string
	Visit(set, func(n Node) bool {
		switch n.(type) {
		case *SetInstruction:
			kinds = append(kinds, "set")
		case *BitLiteral:
			kinds = append(kinds, "bit")
		case *Reference:
			kinds = append(kinds, "ref")
		case *IntLiteral:
			kinds = append(kinds, "int")
		}
		return true
	})

	assert.Equal(t, []string{"set", "bit", "ref", "int", "int"}, kinds)
}

func TestVisitSkipsChildren(t *testing.T) {
	intType := &IntType{Name: "int", Bits: 32, Signed: true}
	obj := NewObject("reg", intType, 2)

	ref := &Reference{Target: obj, Type: intType,
		Indices: []*IntLiteral{{Value: 1, Type: intType}}}

	visited := 0
	Visit(ref, func(n Node) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestVisitControlFlow(t *testing.T) {
	bitType := &BitType{Name: "bit"}
	cond := &BitLiteral{Value: true, Type: bitType}

	stmt := &IfElse{
		Branches: []*IfElseBranch{
			{Condition: cond, Body: &SubBlock{Statements: []Statement{
				&BreakStatement{},
			}}},
		},
		Otherwise: &SubBlock{Statements: []Statement{
			&ContinueStatement{},
		}},
	}

	var breaks, continues int
	Visit(stmt, func(n Node) bool {
		switch n.(type) {
		case *BreakStatement:
			breaks++
		case *ContinueStatement:
			continues++
		}
		return true
	})
	assert.Equal(t, 1, breaks)
	assert.Equal(t, 1, continues)
}

func TestVisitDoesNotFollowBackLinks(t *testing.T) {
	qubitType := &QubitType{Name: "qubit"}
	parent := &InstructionType{
		Name:         "g",
		CQASMName:    "g",
		OperandTypes: []*OperandType{{DataType: qubitType}},
	}
	child := &InstructionType{
		Name:           "g",
		CQASMName:      "g",
		Generalization: parent,
	}
	parent.Specializations = []*InstructionType{child}

	// The generalization back-edge must not cause infinite recursion.
	types := 0
	Visit(parent, func(n Node) bool {
		if _, ok := n.(*InstructionType); ok {
			types++
		}
		return true
	})
	assert.Equal(t, 2, types)
}
