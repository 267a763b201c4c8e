package ops

import (
	"github.com/quantir/quantir/internal/ir"
)

// TypeOf returns the data type of (or returned by) an expression.
func TypeOf(expr ir.Expression) ir.DataType {
	switch x := expr.(type) {
	case ir.Literal:
		return x.LiteralType()
	case *ir.Reference:
		return x.Type
	case *ir.FunctionCall:
		return x.Function.ReturnType
	default:
		return nil
	}
}

// IsAssignableOrQubit reports whether the expression can appear on the
// left-hand side of an assignment or be used as an operand in classical
// write or qubit access mode. Only references qualify.
func IsAssignableOrQubit(expr ir.Expression) bool {
	_, ok := expr.(*ir.Reference)
	return ok
}

// MaxIntFor returns the maximum value representable by an integer type.
func MaxIntFor(typ *ir.IntType) int64 {
	bits := typ.Bits
	if typ.Signed {
		bits--
	}
	return int64((uint64(1) << bits) - 1)
}

// MinIntFor returns the minimum value representable by an integer type.
func MinIntFor(typ *ir.IntType) int64 {
	if !typ.Signed {
		return 0
	}
	return -int64(uint64(1) << (typ.Bits - 1))
}

// MakeIntLit builds an integer literal of the given type, or of the
// platform's default integer type when typ is nil.
func MakeIntLit(root *ir.Root, value int64, typ ir.DataType) (*ir.IntLiteral, error) {
	if typ == nil {
		typ = root.Platform.DefaultIntType
	}
	intType, ok := typ.(*ir.IntType)
	if !ok {
		return nil, ir.Errorf(ir.ErrTypeMismatch,
			"type %s is not integer-like", typ.TypeName())
	}
	if value > MaxIntFor(intType) || value < MinIntFor(intType) {
		return nil, ir.Errorf(ir.ErrOutOfRangeLiteral,
			"integer literal %d out of range for type %s", value, typ.TypeName())
	}
	return &ir.IntLiteral{Value: value, Type: typ}, nil
}

// MakeUIntLit builds an integer literal from an unsigned value.
func MakeUIntLit(root *ir.Root, value uint64, typ ir.DataType) (*ir.IntLiteral, error) {
	if typ == nil {
		typ = root.Platform.DefaultIntType
	}
	intType, ok := typ.(*ir.IntType)
	if !ok {
		return nil, ir.Errorf(ir.ErrTypeMismatch,
			"type %s is not integer-like", typ.TypeName())
	}
	if value > uint64(MaxIntFor(intType)) {
		return nil, ir.Errorf(ir.ErrOutOfRangeLiteral,
			"integer literal %d out of range for type %s", value, typ.TypeName())
	}
	return &ir.IntLiteral{Value: int64(value), Type: typ}, nil
}

// MakeBitLit builds a bit literal of the given type, or of the platform's
// default bit type when typ is nil.
func MakeBitLit(root *ir.Root, value bool, typ ir.DataType) (*ir.BitLiteral, error) {
	if typ == nil {
		typ = root.Platform.DefaultBitType
	}
	if _, ok := typ.(*ir.BitType); !ok {
		return nil, ir.Errorf(ir.ErrTypeMismatch,
			"type %s is not bit-like", typ.TypeName())
	}
	return &ir.BitLiteral{Value: value, Type: typ}, nil
}

// MakeQubitRef makes a reference to an element of the main qubit register.
func MakeQubitRef(root *ir.Root, index uint64) (*ir.Reference, error) {
	return MakeReference(root, root.Platform.Qubits, index)
}

// MakeBitRef makes a reference to the implicit measurement bit associated
// with an element of the main qubit register.
func MakeBitRef(root *ir.Root, index uint64) (*ir.Reference, error) {
	if root.Platform.ImplicitBitType == nil {
		return nil, ir.Errorf(ir.ErrTypeMismatch,
			"platform does not support implicit measurement bits for qubits")
	}
	ref, err := MakeQubitRef(root, index)
	if err != nil {
		return nil, err
	}
	ref.Type = root.Platform.ImplicitBitType
	return ref, nil
}

// MakeReference makes a reference to one element of an object using literal
// indices, one per dimension of the object's shape.
func MakeReference(root *ir.Root, obj *ir.Object, indices ...uint64) (*ir.Reference, error) {
	if len(indices) > len(obj.Shape) {
		return nil, ir.Errorf(ir.ErrIndexOutOfRange,
			"too many indices specified to make reference to %q", obj.Name)
	}
	if len(indices) < len(obj.Shape) {
		return nil, ir.Errorf(ir.ErrIndexOutOfRange,
			"not enough indices specified to make reference to %q "+
				"(only individual elements can be referenced)", obj.Name)
	}
	ref := &ir.Reference{Target: obj, Type: obj.DataType}
	for i, idx := range indices {
		if idx >= obj.Shape[i] {
			return nil, ir.Errorf(ir.ErrIndexOutOfRange,
				"index %d out of range making reference to %q", idx, obj.Name)
		}
		lit, err := MakeUIntLit(root, idx, nil)
		if err != nil {
			return nil, err
		}
		ref.Indices = append(ref.Indices, lit)
	}
	return ref, nil
}

// MakeTemporary allocates an anonymous program-scoped object of the given
// scalar type and returns a link to it. The program owns the temporary for
// the rest of its life.
func MakeTemporary(root *ir.Root, typ ir.DataType) *ir.Object {
	if root.Program == nil {
		root.Program = &ir.Program{}
	}
	obj := ir.NewTemporaryObject(typ)
	root.Program.Objects = append(root.Program.Objects, obj)
	return obj
}
