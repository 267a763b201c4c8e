package ir

import "github.com/quantir/quantir/internal/prim"

// OperandType pairs an access mode with the data type an operand must have.
type OperandType struct {
	Mode     prim.AccessMode
	DataType DataType
}

func (*OperandType) node() {}

// FunctionType declares a platform function: a name (an identifier, or an
// "operator..." spelling), the operand prototype, and the return type.
type FunctionType struct {
	Name         string
	OperandTypes []*OperandType
	ReturnType   DataType
}

func (*FunctionType) node() {}

// DecompositionRule rewrites a fully specialized instruction type into a
// sub-program of lower-level instructions. The IR stores rules; applying them
// is a concern of the decomposition passes.
type DecompositionRule struct {
	// Name identifies the rule set the rule belongs to, or "" for the
	// default set.
	Name string

	// Parameters are the objects the expansion's references point at in
	// place of the instruction's actual operands.
	Parameters []*Object

	// Expansion is the replacement sub-program.
	Expansion *SubBlock

	// DurationCycles is the duration of the expansion in quantum cycles.
	DurationCycles uint64
}

func (*DecompositionRule) node() {}

// InstructionType is a named instruction prototype parameterized by typed
// operands. Specializations fix the first operand to a template expression,
// forming a tree rooted at the fully generalized form:
//
//   - a child's OperandTypes equals its parent's with the first entry
//     removed, and that entry's value appended to TemplateOperands;
//   - Generalization is the non-owning upward link (nil at the root);
//   - Specializations is the owning downward direction;
//   - only leaves carry decomposition rules.
type InstructionType struct {
	// Name is the name used to resolve the instruction in the registry.
	Name string

	// CQASMName is the name the instruction has in cQASM, which may equal
	// Name.
	CQASMName string

	// OperandTypes is the prototype of the operands not (yet) specialized
	// away.
	OperandTypes []*OperandType

	// TemplateOperands holds the values burned into this specialization,
	// outermost first.
	TemplateOperands []Expression

	// Generalization points at the parent specialization, or is nil for
	// the fully generalized root.
	Generalization *InstructionType

	// Specializations owns the child specializations.
	Specializations []*InstructionType

	// Decompositions holds the decomposition rules. Non-empty only on
	// leaves of the specialization tree.
	Decompositions []*DecompositionRule

	// Duration of the instruction in quantum cycles.
	Duration uint64
}

func (*InstructionType) node() {}

// Root returns the fully generalized ancestor of the specialization tree the
// instruction type belongs to (the receiver itself when it is the root).
func (t *InstructionType) Root() *InstructionType {
	cur := t
	for cur.Generalization != nil {
		cur = cur.Generalization
	}
	return cur
}
