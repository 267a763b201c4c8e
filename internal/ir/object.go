package ir

import "sync/atomic"

// objectSeq hands out allocation ordinals for objects. References are ordered
// by their target's ordinal in the access analysis, which keeps that order
// deterministic across runs without comparing pointer values.
var objectSeq atomic.Uint64

// Object is an addressable register: a scalar or dense tensor of elements of
// a single data type. Physical objects live in the platform registry for the
// lifetime of the IR; temporary objects are owned by the program and are
// anonymous.
type Object struct {
	// Name is the platform-unique identifier, or "" for temporaries.
	Name string

	// DataType is the element type of the object.
	DataType DataType

	// Shape gives the extent of each dimension. An empty shape denotes a
	// scalar; an n-element shape a dense tensor of those fixed extents.
	Shape []uint64

	// Temporary marks program-scoped objects allocated on demand.
	Temporary bool

	// ord is the allocation ordinal used to totally order object links.
	ord uint64
}

// NewObject allocates a named object of the given type and shape.
func NewObject(name string, typ DataType, shape ...uint64) *Object {
	return &Object{
		Name:     name,
		DataType: typ,
		Shape:    shape,
		ord:      objectSeq.Add(1),
	}
}

// NewTemporaryObject allocates an anonymous program-scoped object.
func NewTemporaryObject(typ DataType, shape ...uint64) *Object {
	obj := NewObject("", typ, shape...)
	obj.Temporary = true
	return obj
}

// Ordinal returns the object's allocation ordinal.
func (o *Object) Ordinal() uint64 { return o.ord }
