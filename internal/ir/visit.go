package ir

// Node is the interface common to every IR node kind. It is sealed: only
// types in this package implement it. Tree algorithms (Visit, Describe, the
// remapper) accept any Node.
type Node interface {
	node()
}

// The data type and object structs are nodes too; their marker methods live
// here with the Node definition.
func (*QubitType) node()         {}
func (*BitType) node()           {}
func (*IntType) node()           {}
func (*RealType) node()          {}
func (*ComplexType) node()       {}
func (*RealMatrixType) node()    {}
func (*ComplexMatrixType) node() {}
func (*StringType) node()        {}
func (*JsonType) node()          {}
func (*Object) node()            {}

// Visit walks the tree rooted at node in pre-order, calling f for every node
// encountered. When f returns false the node's children are skipped. Nil
// children are never visited.
//
// Non-owning links (Reference.Target, InstructionType.Generalization, the
// data type links) are not traversed; only the owning tree edges are.
func Visit(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	switch n := node.(type) {
	case *Root:
		if n.Platform != nil {
			Visit(n.Platform, f)
		}
		if n.Program != nil {
			Visit(n.Program, f)
		}

	case *Platform:
		for _, t := range n.DataTypes {
			Visit(t, f)
		}
		for _, o := range n.Objects {
			Visit(o, f)
		}
		for _, ft := range n.Functions {
			Visit(ft, f)
		}
		for _, it := range n.Instructions {
			Visit(it, f)
		}

	case *Program:
		for _, b := range n.Blocks {
			Visit(b, f)
		}
		for _, o := range n.Objects {
			Visit(o, f)
		}

	case *Block:
		for _, s := range n.Statements {
			Visit(s, f)
		}

	case *SubBlock:
		for _, s := range n.Statements {
			Visit(s, f)
		}

	case *FunctionType:
		for _, ot := range n.OperandTypes {
			Visit(ot, f)
		}

	case *InstructionType:
		for _, ot := range n.OperandTypes {
			Visit(ot, f)
		}
		for _, op := range n.TemplateOperands {
			Visit(op, f)
		}
		for _, spec := range n.Specializations {
			Visit(spec, f)
		}
		for _, dec := range n.Decompositions {
			Visit(dec, f)
		}

	case *DecompositionRule:
		for _, p := range n.Parameters {
			Visit(p, f)
		}
		if n.Expansion != nil {
			Visit(n.Expansion, f)
		}

	case *CustomInstruction:
		if n.Condition != nil {
			Visit(n.Condition, f)
		}
		for _, op := range n.Operands {
			Visit(op, f)
		}

	case *SetInstruction:
		if n.Condition != nil {
			Visit(n.Condition, f)
		}
		if n.LHS != nil {
			Visit(n.LHS, f)
		}
		if n.RHS != nil {
			Visit(n.RHS, f)
		}

	case *WaitInstruction:
		for _, r := range n.Objects {
			Visit(r, f)
		}

	case *GotoInstruction:
		if n.Condition != nil {
			Visit(n.Condition, f)
		}

	case *IfElse:
		for _, b := range n.Branches {
			Visit(b, f)
		}
		if n.Otherwise != nil {
			Visit(n.Otherwise, f)
		}

	case *IfElseBranch:
		if n.Condition != nil {
			Visit(n.Condition, f)
		}
		if n.Body != nil {
			Visit(n.Body, f)
		}

	case *StaticLoop:
		if n.LHS != nil {
			Visit(n.LHS, f)
		}
		if n.Body != nil {
			Visit(n.Body, f)
		}

	case *ForLoop:
		if n.Initialize != nil {
			Visit(n.Initialize, f)
		}
		if n.Condition != nil {
			Visit(n.Condition, f)
		}
		if n.Update != nil {
			Visit(n.Update, f)
		}
		if n.Body != nil {
			Visit(n.Body, f)
		}

	case *RepeatUntilLoop:
		if n.Condition != nil {
			Visit(n.Condition, f)
		}
		if n.Body != nil {
			Visit(n.Body, f)
		}

	case *Reference:
		for _, idx := range n.Indices {
			Visit(idx, f)
		}

	case *FunctionCall:
		for _, op := range n.Operands {
			Visit(op, f)
		}

	case *SourceInstruction, *SinkInstruction, *DummyInstruction,
		*BreakStatement, *ContinueStatement,
		*BitLiteral, *IntLiteral, *RealLiteral, *ComplexLiteral,
		*RealMatrixLiteral, *ComplexMatrixLiteral, *StringLiteral,
		*JsonLiteral,
		*OperandType, *Object,
		*QubitType, *BitType, *IntType, *RealType, *ComplexType,
		*RealMatrixType, *ComplexMatrixType, *StringType, *JsonType:
		// Leaf nodes.
	}
}
