package ir

// DataType is a sealed interface over the platform's data type variants.
// Only the *Type structs in this package implement it. Data types are
// platform entities: two links are the same type iff they point at the same
// struct, so identity comparison with == is the canonical type equality.
type DataType interface {
	dataTypeNode()
	node()

	// TypeName returns the platform-unique name of the type.
	TypeName() string
}

// QubitType is the primitive quantum data type.
type QubitType struct {
	Name string
}

func (*QubitType) dataTypeNode() {}

func (t *QubitType) TypeName() string { return t.Name }

// BitType is a classical single-bit type, also used for the implicit
// measurement bit associated with each qubit.
type BitType struct {
	Name string
}

func (*BitType) dataTypeNode() {}

func (t *BitType) TypeName() string { return t.Name }

// IntType is a classical integer type of a fixed bit width.
type IntType struct {
	Name string

	// Bits is the number of bits used to represent the integer, including
	// the sign bit for signed types.
	Bits int

	// Signed selects two's complement representation.
	Signed bool
}

func (*IntType) dataTypeNode() {}

func (t *IntType) TypeName() string { return t.Name }

// RealType is a classical real-number type.
type RealType struct {
	Name string
}

func (*RealType) dataTypeNode() {}

func (t *RealType) TypeName() string { return t.Name }

// ComplexType is a classical complex-number type.
type ComplexType struct {
	Name string
}

func (*ComplexType) dataTypeNode() {}

func (t *ComplexType) TypeName() string { return t.Name }

// RealMatrixType is a matrix of reals with fixed dimensions.
type RealMatrixType struct {
	Name string

	// Rows and Columns give the matrix shape.
	Rows    int
	Columns int
}

func (*RealMatrixType) dataTypeNode() {}

func (t *RealMatrixType) TypeName() string { return t.Name }

// ComplexMatrixType is a matrix of complex numbers with fixed dimensions.
type ComplexMatrixType struct {
	Name string

	Rows    int
	Columns int
}

func (*ComplexMatrixType) dataTypeNode() {}

func (t *ComplexMatrixType) TypeName() string { return t.Name }

// StringType is a classical string type.
type StringType struct {
	Name string
}

func (*StringType) dataTypeNode() {}

func (t *StringType) TypeName() string { return t.Name }

// JsonType carries opaque JSON data through the IR.
type JsonType struct {
	Name string
}

func (*JsonType) dataTypeNode() {}

func (t *JsonType) TypeName() string { return t.Name }

// IsQuantumType reports whether the type holds quantum data.
func IsQuantumType(t DataType) bool {
	_, ok := t.(*QubitType)
	return ok
}

// IsClassicalType reports whether the type holds classical data. Every type
// that is not quantum is classical.
func IsClassicalType(t DataType) bool {
	return !IsQuantumType(t)
}
