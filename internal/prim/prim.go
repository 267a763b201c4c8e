package prim

import "regexp"

// AccessMode describes how an instruction or function uses one of its
// operands. The mode drives the data-dependency analysis: reads commute with
// reads, commuting modes commute with the same axis, and everything else
// serializes as a write.
type AccessMode int

const (
	// AccessWrite is the default mode: the operand is mutated, or must at
	// least be treated as mutated. Writes never commute.
	AccessWrite AccessMode = iota

	// AccessRead means the operand is only inspected. Reads commute with
	// other reads of the same object.
	AccessRead

	// AccessLiteral means the operand must be a literal at the call site.
	// For dependency purposes a literal degenerates to a read.
	AccessLiteral

	// AccessCommuteX marks a qubit operand that commutes along the X axis
	// of the Bloch sphere with other X-axis accesses of the same qubit.
	AccessCommuteX

	// AccessCommuteY marks a qubit operand that commutes along the Y axis.
	AccessCommuteY

	// AccessCommuteZ marks a qubit operand that commutes along the Z axis.
	AccessCommuteZ

	// AccessMeasure marks a qubit operand that is measured: the qubit and
	// its implicit measurement bit are both written.
	AccessMeasure

	// AccessUpdate marks an operand that is read and then written back.
	AccessUpdate
)

// String returns the access mode spelling used by the describer.
func (m AccessMode) String() string {
	switch m {
	case AccessWrite:
		return "write"
	case AccessRead:
		return "read"
	case AccessLiteral:
		return "literal"
	case AccessCommuteX:
		return "X-commute"
	case AccessCommuteY:
		return "Y-commute"
	case AccessCommuteZ:
		return "Z-commute"
	case AccessMeasure:
		return "measure"
	case AccessUpdate:
		return "update"
	default:
		return "<unknown>"
	}
}

// IsCommute reports whether the mode is one of the axis-commutation modes.
func (m AccessMode) IsCommute() bool {
	switch m {
	case AccessCommuteX, AccessCommuteY, AccessCommuteZ:
		return true
	default:
		return false
	}
}

// identifierRE is the grammar for names of data types, objects, instructions
// and functions.
var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidIdentifier reports whether name matches [A-Za-z_][A-Za-z0-9_]*.
func IsValidIdentifier(name string) bool {
	return identifierRE.MatchString(name)
}
