package ir

import "encoding/json"

// Expression is a sealed interface over the expression node variants:
// literals, references, and function calls. Every expression carries the
// DataType link it produces; use ops.TypeOf to read it uniformly.
type Expression interface {
	Node
	exprNode()
}

// Literal is a sealed interface over the literal expression variants.
type Literal interface {
	Expression
	litNode()

	// LiteralType returns the data type the literal carries.
	LiteralType() DataType
}

// BitLiteral is a literal bit value.
type BitLiteral struct {
	Value bool

	// Type links the bit-like data type of the literal.
	Type DataType
}

func (*BitLiteral) node()     {}
func (*BitLiteral) exprNode() {}
func (*BitLiteral) litNode()  {}

func (l *BitLiteral) LiteralType() DataType { return l.Type }

// IntLiteral is a literal integer value. The value must be representable in
// the linked integer type; the ops builders enforce the range.
type IntLiteral struct {
	Value int64
	Type  DataType
}

func (*IntLiteral) node()     {}
func (*IntLiteral) exprNode() {}
func (*IntLiteral) litNode()  {}

func (l *IntLiteral) LiteralType() DataType { return l.Type }

// RealLiteral is a literal real number.
type RealLiteral struct {
	Value float64
	Type  DataType
}

func (*RealLiteral) node()     {}
func (*RealLiteral) exprNode() {}
func (*RealLiteral) litNode()  {}

func (l *RealLiteral) LiteralType() DataType { return l.Type }

// ComplexLiteral is a literal complex number.
type ComplexLiteral struct {
	Value complex128
	Type  DataType
}

func (*ComplexLiteral) node()     {}
func (*ComplexLiteral) exprNode() {}
func (*ComplexLiteral) litNode()  {}

func (l *ComplexLiteral) LiteralType() DataType { return l.Type }

// RealMatrixLiteral stores a literal matrix of reals in row-major order. The
// IR stores matrices verbatim; it never computes with them.
type RealMatrixLiteral struct {
	Value [][]float64
	Type  DataType
}

func (*RealMatrixLiteral) node()     {}
func (*RealMatrixLiteral) exprNode() {}
func (*RealMatrixLiteral) litNode()  {}

func (l *RealMatrixLiteral) LiteralType() DataType { return l.Type }

// ComplexMatrixLiteral stores a literal matrix of complex numbers in
// row-major order.
type ComplexMatrixLiteral struct {
	Value [][]complex128
	Type  DataType
}

func (*ComplexMatrixLiteral) node()     {}
func (*ComplexMatrixLiteral) exprNode() {}
func (*ComplexMatrixLiteral) litNode()  {}

func (l *ComplexMatrixLiteral) LiteralType() DataType { return l.Type }

// StringLiteral is a literal string value.
type StringLiteral struct {
	Value string
	Type  DataType
}

func (*StringLiteral) node()     {}
func (*StringLiteral) exprNode() {}
func (*StringLiteral) litNode()  {}

func (l *StringLiteral) LiteralType() DataType { return l.Type }

// JsonLiteral carries an opaque blob of JSON through the IR.
type JsonLiteral struct {
	Value json.RawMessage
	Type  DataType
}

func (*JsonLiteral) node()     {}
func (*JsonLiteral) exprNode() {}
func (*JsonLiteral) litNode()  {}

func (l *JsonLiteral) LiteralType() DataType { return l.Type }

// Reference is an addressable view into an object: the target, one literal
// index per target dimension, and the data type the element is viewed as.
// The viewed type normally equals the target's element type, but may differ
// to model the implicit measurement bit associated with a qubit.
type Reference struct {
	// Target links the referenced object. A nil target is the empty
	// reference, which the access analysis uses to model barriers.
	Target *Object

	// Type is the data type the referenced element is viewed as.
	Type DataType

	// Indices holds one in-range integer literal per target dimension.
	Indices []*IntLiteral
}

func (*Reference) node()     {}
func (*Reference) exprNode() {}

// IsEmpty reports whether this is the empty (barrier) reference.
func (r *Reference) IsEmpty() bool { return r.Target == nil }

// FunctionCall applies a platform function type to operand expressions. Its
// result type is the function type's return type.
type FunctionCall struct {
	Function *FunctionType
	Operands []Expression
}

func (*FunctionCall) node()     {}
func (*FunctionCall) exprNode() {}
