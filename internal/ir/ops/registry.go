package ops

import (
	"sort"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/prim"
)

// FindType returns the data type with the given name, or nil when no such
// type exists.
func FindType(root *ir.Root, name string) ir.DataType {
	types := root.Platform.DataTypes
	i := sort.Search(len(types), func(i int) bool {
		return types[i].TypeName() >= name
	})
	if i < len(types) && types[i].TypeName() == name {
		return types[i]
	}
	return nil
}

// AddType adds a data type to the platform. The name must be a valid
// identifier and unique among data types.
func AddType(root *ir.Root, typ ir.DataType) (ir.DataType, error) {
	name := typ.TypeName()
	if !prim.IsValidIdentifier(name) {
		return nil, ir.Errorf(ir.ErrInvalidName,
			"invalid name for new data type: %q is not a valid identifier", name)
	}
	types := root.Platform.DataTypes
	i := sort.Search(len(types), func(i int) bool {
		return types[i].TypeName() >= name
	})
	if i < len(types) && types[i].TypeName() == name {
		return nil, ir.Errorf(ir.ErrDuplicateDefinition,
			"invalid name for new data type: %q is already in use", name)
	}
	root.Platform.DataTypes = insertAt(types, i, typ)
	return typ, nil
}

// AddPhysicalObject adds a named register to the platform. The name must be
// a valid identifier and unique among objects.
func AddPhysicalObject(root *ir.Root, obj *ir.Object) (*ir.Object, error) {
	if !prim.IsValidIdentifier(obj.Name) {
		return nil, ir.Errorf(ir.ErrInvalidName,
			"invalid name for new register: %q is not a valid identifier", obj.Name)
	}
	objs := root.Platform.Objects
	i := sort.Search(len(objs), func(i int) bool {
		return objs[i].Name >= obj.Name
	})
	if i < len(objs) && objs[i].Name == obj.Name {
		return nil, ir.Errorf(ir.ErrDuplicateDefinition,
			"invalid name for new register: %q is already in use", obj.Name)
	}
	root.Platform.Objects = insertAt(objs, i, obj)
	return obj, nil
}

// FindPhysicalObject returns the object with the given name, or nil when no
// such object exists.
func FindPhysicalObject(root *ir.Root, name string) *ir.Object {
	objs := root.Platform.Objects
	i := sort.Search(len(objs), func(i int) bool {
		return objs[i].Name >= name
	})
	if i < len(objs) && objs[i].Name == name {
		return objs[i]
	}
	return nil
}

// AddFunctionType adds a function type to the platform. The name must be a
// valid identifier or an operator spelling ("operator" prefix). Overloads
// are allowed; an overload with the same positional operand data types is a
// duplicate.
func AddFunctionType(root *ir.Root, fn *ir.FunctionType) (*ir.FunctionType, error) {
	if !prim.IsValidIdentifier(fn.Name) && !isOperatorName(fn.Name) {
		return nil, ir.Errorf(ir.ErrInvalidName,
			"invalid name for new function type: %q is not a valid identifier or operator", fn.Name)
	}
	fns := root.Platform.Functions
	i := sort.Search(len(fns), func(i int) bool {
		return fns[i].Name >= fn.Name
	})
	for ; i < len(fns) && fns[i].Name == fn.Name; i++ {
		if operandTypesMatch(fns[i].OperandTypes, fn.OperandTypes) {
			return nil, ir.Errorf(ir.ErrDuplicateDefinition,
				"duplicate function type: %s", ir.Describe(fns[i]))
		}
	}
	root.Platform.Functions = insertAt(fns, i, fn)
	return fn, nil
}

// FindFunctionType returns the function type with the given name whose
// positional operand data types match, or nil when no overload matches.
func FindFunctionType(root *ir.Root, name string, types []ir.DataType) *ir.FunctionType {
	fns := root.Platform.Functions
	i := sort.Search(len(fns), func(i int) bool {
		return fns[i].Name >= name
	})
	for ; i < len(fns) && fns[i].Name == name; i++ {
		if operandDataTypesMatch(fns[i].OperandTypes, types) {
			return fns[i]
		}
	}
	return nil
}

func isOperatorName(name string) bool {
	const prefix = "operator"
	return len(name) > len(prefix) && name[:len(prefix)] == prefix
}

// operandTypesMatch reports whether two prototypes have the same positional
// operand data types. Access modes are not part of the signature.
func operandTypesMatch(a, b []*ir.OperandType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].DataType != b[i].DataType {
			return false
		}
	}
	return true
}

func operandDataTypesMatch(proto []*ir.OperandType, types []ir.DataType) bool {
	if len(proto) != len(types) {
		return false
	}
	for i := range proto {
		if proto[i].DataType != types[i] {
			return false
		}
	}
	return true
}

func insertAt[T any](s []T, i int, v T) []T {
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
