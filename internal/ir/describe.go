package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantir/quantir/internal/prim"
)

// Describe renders a one-line human-readable description of any IR node,
// aimed at error messages and diagnostics. Inherently multi-line nodes
// (platforms, programs, blocks) render as minimal identifiers only.
//
// Expression rendering follows the cQASM operator table: parentheses are
// emitted only when the surrounding precedence exceeds the precedence of the
// operator being printed.
func Describe(node Node) string {
	var sb strings.Builder
	describeNode(&sb, node)
	return sb.String()
}

func describeNode(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Root:
		if n.Program == nil {
			sb.WriteString("empty root")
		} else {
			sb.WriteString("root for ")
			describeNode(sb, n.Program)
		}

	case *Platform:
		if n.Name == "" {
			sb.WriteString("anonymous platform")
		} else {
			sb.WriteString("platform " + n.Name)
		}

	case *Program:
		if n.Name == "" {
			sb.WriteString("anonymous program")
		} else {
			sb.WriteString("program " + n.Name)
		}

	case *Block:
		if n.Name == "" {
			sb.WriteString("anonymous block")
		} else {
			sb.WriteString("block " + n.Name)
		}

	case *SubBlock:
		sb.WriteString("anonymous block")

	case *Object:
		describeObject(sb, n)

	case *OperandType:
		describeOperandType(sb, n)

	case *FunctionType:
		sb.WriteString(n.Name + "(")
		for i, ot := range n.OperandTypes {
			if i > 0 {
				sb.WriteString(", ")
			}
			describeOperandType(sb, ot)
		}
		sb.WriteString(") -> ")
		sb.WriteString(n.ReturnType.TypeName())

	case *InstructionType:
		first := describeInstructionTypePrefix(sb, n)
		for _, ot := range n.OperandTypes {
			if !first {
				sb.WriteString(",")
			}
			first = false
			sb.WriteString(" ")
			describeOperandType(sb, ot)
		}

	case *CustomInstruction:
		describeCondition(sb, n.Condition)
		first := describeInstructionTypePrefix(sb, n.InstructionType)
		for i, op := range n.Operands {
			if !first {
				sb.WriteString(",")
			}
			first = false
			sb.WriteString(" ")
			describeOperandType(sb, n.InstructionType.OperandTypes[i])
			sb.WriteString("=")
			describeExpr(sb, op, 0)
		}

	case *SetInstruction:
		describeCondition(sb, n.Condition)
		describeExpr(sb, n.LHS, 0)
		sb.WriteString(" = ")
		describeExpr(sb, n.RHS, 0)

	case *GotoInstruction:
		describeCondition(sb, n.Condition)
		sb.WriteString("goto ")
		describeNode(sb, n.Target)

	case *WaitInstruction:
		sb.WriteString("wait")
		if n.Duration != 0 {
			fmt.Fprintf(sb, " %d", n.Duration)
			if n.Duration == 1 {
				sb.WriteString(" cycle")
			} else {
				sb.WriteString(" cycles")
			}
			if len(n.Objects) != 0 {
				sb.WriteString(" after")
			}
		} else if len(n.Objects) != 0 {
			sb.WriteString(" on")
		}
		for i, ref := range n.Objects {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(" ")
			describeExpr(sb, ref, 0)
		}

	case *SourceInstruction:
		sb.WriteString("SOURCE")

	case *SinkInstruction:
		sb.WriteString("SINK")

	case *DummyInstruction:
		sb.WriteString("dummy")

	case *IfElse:
		sb.WriteString("if (")
		describeExpr(sb, n.Branches[0].Condition, 0)
		sb.WriteString(") ...")

	case *IfElseBranch:
		sb.WriteString("if (")
		describeExpr(sb, n.Condition, 0)
		sb.WriteString(") ...")

	case *StaticLoop, *ForLoop, *RepeatUntilLoop:
		sb.WriteString("loop ...")

	case *BreakStatement:
		sb.WriteString("break")

	case *ContinueStatement:
		sb.WriteString("continue")

	case *DecompositionRule:
		if n.Name == "" {
			sb.WriteString("anonymous decomposition rule")
		} else {
			sb.WriteString("decomposition rule " + n.Name)
		}

	case DataType:
		sb.WriteString(n.TypeName())

	case Expression:
		describeExpr(sb, n, 0)

	default:
		sb.WriteString("<UNKNOWN>")
	}
}

func describeObject(sb *strings.Builder, obj *Object) {
	if obj.Name == "" {
		sb.WriteString("<anonymous>")
	} else {
		sb.WriteString(obj.Name)
	}
	sb.WriteString(": ")
	sb.WriteString(obj.DataType.TypeName())
	if len(obj.Shape) != 0 {
		sb.WriteString("[")
		for i, extent := range obj.Shape {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatUint(extent, 10))
		}
		sb.WriteString("]")
	}
}

func describeOperandType(sb *strings.Builder, ot *OperandType) {
	switch ot.Mode {
	case prim.AccessWrite:
		// Qubit operands are implicitly written; the prefix would be
		// noise on every quantum gate.
		if !IsQuantumType(ot.DataType) {
			sb.WriteString("write ")
		}
	case prim.AccessRead, prim.AccessLiteral, prim.AccessCommuteX,
		prim.AccessCommuteY, prim.AccessCommuteZ, prim.AccessMeasure:
		sb.WriteString(ot.Mode.String() + " ")
	case prim.AccessUpdate:
		// Update has no cQASM spelling; render the bare type.
	}
	sb.WriteString(ot.DataType.TypeName())
}

// describeInstructionTypePrefix prints the instruction type name plus its
// template operands, and reports whether nothing followed the name yet (so
// the caller knows whether to emit a separating comma).
func describeInstructionTypePrefix(sb *strings.Builder, t *InstructionType) bool {
	sb.WriteString(t.Name)
	if t.CQASMName != t.Name {
		sb.WriteString("/" + t.CQASMName)
	}
	first := true
	if len(t.TemplateOperands) != 0 {
		// Template operand types come from the fully generalized root,
		// which still carries the operand types that were specialized
		// away.
		root := t.Root()
		for i, op := range t.TemplateOperands {
			if !first {
				sb.WriteString(",")
			}
			first = false
			sb.WriteString(" ")
			describeOperandType(sb, root.OperandTypes[i])
			sb.WriteString("=")
			describeExpr(sb, op, 0)
		}
	}
	return first
}

// describeCondition prints the "cond (...)" prefix of a conditional
// instruction. The prefix is elided iff the condition is the literal true.
func describeCondition(sb *strings.Builder, cond Expression) {
	if lit, ok := cond.(*BitLiteral); ok && lit.Value {
		return
	}
	if cond == nil {
		return
	}
	sb.WriteString("cond (")
	describeExpr(sb, cond, 0)
	sb.WriteString(") ")
}

// describeExpr renders an expression at the given surrounding precedence
// level. Parentheses are emitted when the surrounding precedence exceeds the
// precedence of the operator being rendered; the level is threaded through
// the recursion rather than kept as state.
func describeExpr(sb *strings.Builder, e Expression, precedence int) {
	switch x := e.(type) {
	case *BitLiteral:
		if x.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}

	case *IntLiteral:
		sb.WriteString(strconv.FormatInt(x.Value, 10))

	case *RealLiteral:
		sb.WriteString(strconv.FormatFloat(x.Value, 'g', -1, 64))

	case *ComplexLiteral:
		fmt.Fprintf(sb, "%v", x.Value)

	case *RealMatrixLiteral:
		sb.WriteString("[")
		for i, row := range x.Value {
			if i > 0 {
				sb.WriteString("; ")
			}
			for j, v := range row {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		sb.WriteString("]")

	case *ComplexMatrixLiteral:
		sb.WriteString("[")
		for i, row := range x.Value {
			if i > 0 {
				sb.WriteString("; ")
			}
			for j, v := range row {
				if j > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(sb, "%v", v)
			}
		}
		sb.WriteString("]")

	case *StringLiteral:
		esc := strings.ReplaceAll(x.Value, `\`, `\\`)
		esc = strings.ReplaceAll(esc, `"`, `\"`)
		sb.WriteString(`"` + esc + `"`)

	case *JsonLiteral:
		sb.Write(x.Value)

	case *Reference:
		describeReference(sb, x)

	case *FunctionCall:
		describeCall(sb, x, precedence)

	default:
		sb.WriteString("<UNKNOWN>")
	}
}

func describeReference(sb *strings.Builder, ref *Reference) {
	if ref.Target == nil {
		sb.WriteString("<empty>")
		return
	}
	if ref.Type != ref.Target.DataType {
		sb.WriteString("(")
		sb.WriteString(ref.Type.TypeName())
		sb.WriteString(")")
	}
	if ref.Target.Name == "" {
		sb.WriteString("<anonymous>")
	} else {
		sb.WriteString(ref.Target.Name)
	}
	if len(ref.Indices) != 0 {
		sb.WriteString("[")
		for i, idx := range ref.Indices {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(idx.Value, 10))
		}
		sb.WriteString("]")
	}
}

func describeCall(sb *strings.Builder, call *FunctionCall, precedence int) {
	info, isOperator := prim.LookupOperator(call.Function.Name, len(call.Operands))
	if !isOperator {
		// Plain function call syntax; operand precedence resets.
		sb.WriteString(call.Function.Name + "(")
		for i, op := range call.Operands {
			if i > 0 {
				sb.WriteString(", ")
			}
			describeExpr(sb, op, 0)
		}
		sb.WriteString(")")
		return
	}

	parens := precedence > info.Precedence
	if parens {
		sb.WriteString("(")
	}
	sb.WriteString(info.Prefix)

	switch len(call.Operands) {
	case 1:
		// Associativity is irrelevant for unary operators; there are no
		// postfix operators.
		describeExpr(sb, call.Operands[0], info.Precedence)

	case 2, 3:
		// The first operand needs parentheses on equal precedence only
		// for right-associative operators, the last only for
		// left-associative ones.
		firstPrec := info.Precedence
		if info.Associativity == prim.RightAssociative {
			firstPrec++
		}
		describeExpr(sb, call.Operands[0], firstPrec)
		sb.WriteString(info.Infix)

		if len(call.Operands) == 3 {
			// The middle operand of a ternary is rendered one level
			// up. Not strictly required, but easier to read; a
			// rendering choice, not a contract.
			describeExpr(sb, call.Operands[1], info.Precedence+1)
			sb.WriteString(info.Infix2)
		}

		lastPrec := info.Precedence
		if info.Associativity == prim.LeftAssociative {
			lastPrec++
		}
		describeExpr(sb, call.Operands[len(call.Operands)-1], lastPrec)
	}

	if parens {
		sb.WriteString(")")
	}
}
