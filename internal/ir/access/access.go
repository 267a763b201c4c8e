package access

import (
	"sort"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/prim"
)

// Access is one entry of the analysis result: a reference and the effective
// mode everything so far accessed it with.
type Access struct {
	Reference *ir.Reference
	Mode      prim.AccessMode
}

// ObjectAccesses accumulates the object accesses of statements and blocks.
// The zero toggles leave axis commutation enabled; a scheduler that cannot
// exploit commutation sets the toggles to demote commuting accesses to
// writes.
type ObjectAccesses struct {
	// DisableSingleQubitCommutation demotes commute modes to write for
	// instructions with exactly one qubit operand.
	DisableSingleQubitCommutation bool

	// DisableMultiQubitCommutation demotes commute modes to write for
	// instructions with two or more qubit operands.
	DisableMultiQubitCommutation bool

	root *ir.Root

	// accesses is kept sorted by CompareReferences over the reference.
	accesses []Access
}

// New creates an analysis over the given IR root.
func New(root *ir.Root) *ObjectAccesses {
	return &ObjectAccesses{root: root}
}

// Get returns the accumulated access list, ordered by reference.
func (a *ObjectAccesses) Get() []Access {
	return a.accesses
}

// Reset empties the access list so the analysis can be reused.
func (a *ObjectAccesses) Reset() {
	a.accesses = nil
}

// AddAccess records a single access. Literal mode is promoted to read, as
// accessing an object in literal mode is meaningless. Measure mode records a
// write on the qubit view plus a write on a clone of the reference retyped
// to the implicit measurement bit. An access to an already-recorded
// reference keeps the mode when equal and collapses to write otherwise.
func (a *ObjectAccesses) AddAccess(mode prim.AccessMode, ref *ir.Reference) error {
	switch mode {
	case prim.AccessLiteral:
		mode = prim.AccessRead
	case prim.AccessMeasure:
		if a.root.Platform.ImplicitBitType == nil {
			return ir.Errorf(ir.ErrInternalConsistency,
				"measure access requires an implicit bit type on the platform")
		}
		bitView := ir.CloneReference(ref)
		bitView.Type = a.root.Platform.ImplicitBitType
		if err := a.AddAccess(prim.AccessWrite, bitView); err != nil {
			return err
		}
		mode = prim.AccessWrite
	}

	i := sort.Search(len(a.accesses), func(i int) bool {
		return ir.CompareReferences(a.accesses[i].Reference, ref) >= 0
	})
	if i < len(a.accesses) && ir.CompareReferences(a.accesses[i].Reference, ref) == 0 {
		if a.accesses[i].Mode != mode {
			a.accesses[i].Mode = prim.AccessWrite
		}
		return nil
	}
	a.accesses = append(a.accesses, Access{})
	copy(a.accesses[i+1:], a.accesses[i:])
	a.accesses[i] = Access{Reference: ref, Mode: mode}
	return nil
}

// AddExpression records the accesses of a complete expression. References
// contribute the given mode; function call operands contribute per the
// function type's operand modes; literals touch nothing.
func (a *ObjectAccesses) AddExpression(mode prim.AccessMode, expr ir.Expression) error {
	switch x := expr.(type) {
	case *ir.Reference:
		return a.AddAccess(mode, x)
	case *ir.FunctionCall:
		return a.AddOperands(x.Function.OperandTypes, x.Operands)
	default:
		return nil
	}
}

// AddOperands records the accesses of an operand list against its prototype,
// applying the commutation toggles based on the prototype's qubit operand
// count.
func (a *ObjectAccesses) AddOperands(prototype []*ir.OperandType, operands []ir.Expression) error {
	numQubits := 0
	for _, ot := range prototype {
		if ir.IsQuantumType(ot.DataType) {
			numQubits++
		}
	}
	disableCommutation := (numQubits == 1 && a.DisableSingleQubitCommutation) ||
		(numQubits > 1 && a.DisableMultiQubitCommutation)

	for i, ot := range prototype {
		mode := ot.Mode
		if disableCommutation && mode.IsCommute() {
			mode = prim.AccessWrite
		}
		if err := a.AddExpression(mode, operands[i]); err != nil {
			return err
		}
	}
	return nil
}

// AddStatement records the accesses of a complete statement, including the
// trailing synthetic access on the empty reference: write for barrier-like
// statements, read for everything else.
func (a *ObjectAccesses) AddStatement(stmt ir.Statement) error {
	barrier := false

	if cond, ok := stmt.(ir.ConditionalInstruction); ok {
		if err := a.AddExpression(prim.AccessRead, cond.ConditionExpr()); err != nil {
			return err
		}
	}

	switch x := stmt.(type) {
	case *ir.CustomInstruction:
		if err := a.AddOperands(x.InstructionType.OperandTypes, x.Operands); err != nil {
			return err
		}
		// Operands burned into the specialization still count; their
		// modes come from the fully generalized root.
		if len(x.InstructionType.TemplateOperands) != 0 {
			gen := x.InstructionType.Root()
			for i, op := range x.InstructionType.TemplateOperands {
				if err := a.AddExpression(gen.OperandTypes[i].Mode, op); err != nil {
					return err
				}
			}
		}

	case *ir.SetInstruction:
		if err := a.AddExpression(prim.AccessWrite, x.LHS); err != nil {
			return err
		}
		if err := a.AddExpression(prim.AccessRead, x.RHS); err != nil {
			return err
		}

	case *ir.GotoInstruction:
		barrier = true

	case *ir.WaitInstruction:
		if len(x.Objects) == 0 {
			barrier = true
		} else {
			// Waiting on an object means nothing may be reordered
			// past the wait on it, which is a write for dependency
			// purposes.
			for _, ref := range x.Objects {
				if err := a.AddExpression(prim.AccessWrite, ref); err != nil {
					return err
				}
			}
		}

	case *ir.DummyInstruction:
		barrier = true

	case *ir.IfElse:
		for _, branch := range x.Branches {
			if err := a.AddExpression(prim.AccessRead, branch.Condition); err != nil {
				return err
			}
			if err := a.AddBlock(branch.Body.Statements); err != nil {
				return err
			}
		}
		if x.Otherwise != nil {
			if err := a.AddBlock(x.Otherwise.Statements); err != nil {
				return err
			}
		}

	case *ir.StaticLoop:
		if err := a.AddBlock(x.Body.Statements); err != nil {
			return err
		}
		if err := a.AddExpression(prim.AccessWrite, x.LHS); err != nil {
			return err
		}

	case *ir.ForLoop:
		if err := a.AddBlock(x.Body.Statements); err != nil {
			return err
		}
		if err := a.AddExpression(prim.AccessRead, x.Condition); err != nil {
			return err
		}
		if x.Initialize != nil {
			if err := a.AddStatement(x.Initialize); err != nil {
				return err
			}
		}
		if x.Update != nil {
			if err := a.AddStatement(x.Update); err != nil {
				return err
			}
		}

	case *ir.RepeatUntilLoop:
		if err := a.AddBlock(x.Body.Statements); err != nil {
			return err
		}
		if err := a.AddExpression(prim.AccessRead, x.Condition); err != nil {
			return err
		}

	case *ir.BreakStatement, *ir.ContinueStatement:
		barrier = true

	default:
		// Source, sink, and anything unaccounted for must never reach
		// the analysis.
		return ir.Errorf(ir.ErrInternalConsistency,
			"unexpected statement kind in access analysis: %s", ir.Describe(stmt))
	}

	mode := prim.AccessRead
	if barrier {
		mode = prim.AccessWrite
	}
	return a.AddAccess(mode, &ir.Reference{})
}

// AddBlock records the accesses of a statement sequence in order.
func (a *ObjectAccesses) AddBlock(statements []ir.Statement) error {
	for _, stmt := range statements {
		if err := a.AddStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}
