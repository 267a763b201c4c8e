package prim

// Associativity of an operator, used to decide which side of a binary
// operator needs parentheses for operands of equal precedence.
type Associativity int

const (
	// LeftAssociative operators group left to right: a - b - c is (a - b) - c.
	LeftAssociative Associativity = iota

	// RightAssociative operators group right to left: a ** b ** c is
	// a ** (b ** c).
	RightAssociative
)

// OperatorKey identifies an operator overload by function-type name and
// operand count. The same name can appear at several arities (unary and
// binary minus, for instance).
type OperatorKey struct {
	Name  string
	Arity int
}

// OperatorInfo holds the rendering metadata for one operator as it appears in
// cQASM. Prefix is printed before the first operand, Infix between the first
// and second, and Infix2 between the second and third (ternary only).
type OperatorInfo struct {
	Precedence    int
	Associativity Associativity
	Prefix        string
	Infix         string
	Infix2        string
}

// Operators maps function-type names to their cQASM spelling and precedence.
// Function calls whose name is not in this table render as name(a, b, ...).
var Operators = map[OperatorKey]OperatorInfo{
	{"operator?:", 3}:  {1, RightAssociative, "", " ? ", " : "},
	{"operator||", 2}:  {2, LeftAssociative, "", " || ", ""},
	{"operator^^", 2}:  {3, LeftAssociative, "", " ^^ ", ""},
	{"operator&&", 2}:  {4, LeftAssociative, "", " && ", ""},
	{"operator|", 2}:   {5, LeftAssociative, "", " | ", ""},
	{"operator^", 2}:   {6, LeftAssociative, "", " ^ ", ""},
	{"operator&", 2}:   {7, LeftAssociative, "", " & ", ""},
	{"operator==", 2}:  {8, LeftAssociative, "", " == ", ""},
	{"operator!=", 2}:  {8, LeftAssociative, "", " != ", ""},
	{"operator<", 2}:   {9, LeftAssociative, "", " < ", ""},
	{"operator>", 2}:   {9, LeftAssociative, "", " > ", ""},
	{"operator<=", 2}:  {9, LeftAssociative, "", " <= ", ""},
	{"operator>=", 2}:  {9, LeftAssociative, "", " >= ", ""},
	{"operator<<", 2}:  {10, LeftAssociative, "", " << ", ""},
	{"operator<<<", 2}: {10, LeftAssociative, "", " <<< ", ""},
	{"operator>>", 2}:  {10, LeftAssociative, "", " >> ", ""},
	{"operator>>>", 2}: {10, LeftAssociative, "", " >>> ", ""},
	{"operator+", 2}:   {11, LeftAssociative, "", " + ", ""},
	{"operator-", 2}:   {11, LeftAssociative, "", " - ", ""},
	{"operator*", 2}:   {12, LeftAssociative, "", " * ", ""},
	{"operator/", 2}:   {12, LeftAssociative, "", " / ", ""},
	{"operator//", 2}:  {12, LeftAssociative, "", " // ", ""},
	{"operator%", 2}:   {12, LeftAssociative, "", " % ", ""},
	{"operator**", 2}:  {13, RightAssociative, "", " ** ", ""},
	{"operator-", 1}:   {14, RightAssociative, "-", "", ""},
	{"operator+", 1}:   {14, RightAssociative, "+", "", ""},
	{"operator~", 1}:   {14, RightAssociative, "~", "", ""},
	{"operator!", 1}:   {14, RightAssociative, "!", "", ""},
}

// LookupOperator returns the operator metadata for a function-type name and
// arity, and whether the pair names an operator at all.
func LookupOperator(name string, arity int) (OperatorInfo, bool) {
	info, ok := Operators[OperatorKey{Name: name, Arity: arity}]
	return info, ok
}
