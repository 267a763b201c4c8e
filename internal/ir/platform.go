package ir

// SubBlock is an ordered sequence of statements nested inside structured
// control flow.
type SubBlock struct {
	Statements []Statement
}

func (*SubBlock) node() {}

// Block is a top-level sequence of statements in a program. Blocks are the
// targets of goto instructions and carry a name for that purpose.
type Block struct {
	Name       string
	Statements []Statement
}

func (*Block) node() {}

// Platform declares everything that is legal in a program: the data types,
// the physical objects, the function types, and the instruction types. All
// four registries are kept sorted by name and are append-only; links into
// them stay valid for the lifetime of the Root.
type Platform struct {
	// Name of the platform, or "" for an anonymous platform.
	Name string

	// DataTypes, sorted by name, names unique.
	DataTypes []DataType

	// Objects, sorted by name, names unique.
	Objects []*Object

	// Functions, sorted by name. Duplicate names are allowed when the
	// positional operand data types differ.
	Functions []*FunctionType

	// Instructions, sorted by name. Duplicate names are allowed when the
	// positional operand data types differ. Only fully generalized roots
	// appear here; specializations hang off them.
	Instructions []*InstructionType

	// Qubits is the main qubit register, a distinguished one-dimensional
	// object of qubit type that also appears in Objects.
	Qubits *Object

	// DefaultIntType is the integer type literal builders use when no type
	// is given.
	DefaultIntType DataType

	// DefaultBitType is the bit type literal builders use when no type is
	// given.
	DefaultBitType DataType

	// ImplicitBitType, when non-nil, associates a measurement bit with
	// each qubit of the main register.
	ImplicitBitType DataType
}

func (*Platform) node() {}

// Program owns the blocks of a compiled program plus the temporary objects
// allocated while transforming it.
type Program struct {
	// Name of the program, or "" for an anonymous program.
	Name string

	// Entry is the block execution starts in.
	Entry *Block

	Blocks []*Block

	// Objects holds the program-scoped temporaries.
	Objects []*Object
}

func (*Program) node() {}

// Root is the root of the IR tree: one platform plus one program. All
// structured operations take the Root they operate on; there is no ambient
// platform.
type Root struct {
	Platform *Platform

	// Program may be nil while only the platform is being built.
	Program *Program
}

func (*Root) node() {}

// NewRoot creates an IR root with an empty anonymous platform and no
// program.
func NewRoot() *Root {
	return &Root{Platform: &Platform{}}
}
