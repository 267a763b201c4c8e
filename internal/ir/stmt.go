package ir

// Statement is a sealed interface over everything that can appear in a
// block: instructions, structured control flow, and loop control.
type Statement interface {
	Node
	stmtNode()
}

// Instruction is a sealed interface over the instruction statement variants.
type Instruction interface {
	Statement
	instrNode()

	// Scheduled returns the cycle the instruction was scheduled in. Zero
	// until a scheduler assigns it.
	Scheduled() uint64
}

// InstructionBase carries the fields shared by every instruction variant.
type InstructionBase struct {
	// Cycle is the cycle the instruction starts in once scheduled.
	Cycle uint64
}

// Scheduled implements Instruction.
func (b *InstructionBase) Scheduled() uint64 { return b.Cycle }

// Conditional carries the execution condition shared by the conditional
// instruction variants (custom, set, goto). The condition must have bit type;
// an unconditional instruction carries a literal true.
type Conditional struct {
	Condition Expression
}

// ConditionalInstruction is implemented by instruction variants that can be
// predicated on a classical bit expression.
type ConditionalInstruction interface {
	Instruction

	// ConditionExpr returns the execution condition.
	ConditionExpr() Expression

	// SetConditionExpr replaces the execution condition.
	SetConditionExpr(Expression)
}

// ConditionExpr implements ConditionalInstruction.
func (c *Conditional) ConditionExpr() Expression { return c.Condition }

// SetConditionExpr implements ConditionalInstruction.
func (c *Conditional) SetConditionExpr(e Expression) { c.Condition = e }

// CustomInstruction is an instance of a platform-defined instruction type.
// Operands line up positionally with the type's OperandTypes; operands fixed
// by the type's template operands are not repeated here.
type CustomInstruction struct {
	InstructionBase
	Conditional

	InstructionType *InstructionType
	Operands        []Expression
}

func (*CustomInstruction) node()      {}
func (*CustomInstruction) stmtNode()  {}
func (*CustomInstruction) instrNode() {}

// SetInstruction assigns the value of a classical expression to a classical
// reference of the same data type.
type SetInstruction struct {
	InstructionBase
	Conditional

	LHS *Reference
	RHS Expression
}

func (*SetInstruction) node()      {}
func (*SetInstruction) stmtNode()  {}
func (*SetInstruction) instrNode() {}

// WaitInstruction delays the objects it waits on by Duration cycles. With an
// empty object list it is a full barrier: everything waits. Waits are always
// unconditional.
type WaitInstruction struct {
	InstructionBase

	// Duration to wait in cycles. Zero-duration waits are barriers that
	// only constrain ordering.
	Duration uint64

	// Objects lists what is waited on. Empty means everything.
	Objects []*Reference
}

func (*WaitInstruction) node()      {}
func (*WaitInstruction) stmtNode()  {}
func (*WaitInstruction) instrNode() {}

// GotoInstruction is an unstructured jump to another block.
type GotoInstruction struct {
	InstructionBase
	Conditional

	Target *Block
}

func (*GotoInstruction) node()      {}
func (*GotoInstruction) stmtNode()  {}
func (*GotoInstruction) instrNode() {}

// SourceInstruction is the synthetic entry node used by data-dependency
// graphs. It never appears in user programs.
type SourceInstruction struct {
	InstructionBase
}

func (*SourceInstruction) node()      {}
func (*SourceInstruction) stmtNode()  {}
func (*SourceInstruction) instrNode() {}

// SinkInstruction is the synthetic exit node used by data-dependency graphs.
type SinkInstruction struct {
	InstructionBase
}

func (*SinkInstruction) node()      {}
func (*SinkInstruction) stmtNode()  {}
func (*SinkInstruction) instrNode() {}

// DummyInstruction is a placeholder that behaves as a barrier, used by passes
// that need to pin a position in a block.
type DummyInstruction struct {
	InstructionBase
}

func (*DummyInstruction) node()      {}
func (*DummyInstruction) stmtNode()  {}
func (*DummyInstruction) instrNode() {}

// IfElseBranch pairs a bit-typed condition with the body executed when it is
// the first true condition of its IfElse.
type IfElseBranch struct {
	Condition Expression
	Body      *SubBlock
}

func (*IfElseBranch) node() {}

// IfElse executes the body of the first branch whose condition is true, or
// Otherwise (when non-nil) if none is.
type IfElse struct {
	Branches  []*IfElseBranch
	Otherwise *SubBlock
}

func (*IfElse) node()     {}
func (*IfElse) stmtNode() {}

// Loop is a sealed interface over the loop statement variants.
type Loop interface {
	Statement
	loopNode()

	// LoopBody returns the loop body.
	LoopBody() *SubBlock
}

// StaticLoop repeats its body once per value of a compile-time-known
// iteration space, assigning the loop variable each iteration.
type StaticLoop struct {
	// LHS is the loop variable written each iteration.
	LHS *Reference

	Body *SubBlock
}

func (*StaticLoop) node()     {}
func (*StaticLoop) stmtNode() {}
func (*StaticLoop) loopNode() {}

// LoopBody implements Loop.
func (l *StaticLoop) LoopBody() *SubBlock { return l.Body }

// ForLoop is a dynamic loop with optional initialize and update assignments
// around a bit-typed continuation condition.
type ForLoop struct {
	// Initialize runs once before the first iteration, or is nil.
	Initialize *SetInstruction

	Condition Expression

	// Update runs after every iteration, or is nil.
	Update *SetInstruction

	Body *SubBlock
}

func (*ForLoop) node()     {}
func (*ForLoop) stmtNode() {}
func (*ForLoop) loopNode() {}

// LoopBody implements Loop.
func (l *ForLoop) LoopBody() *SubBlock { return l.Body }

// RepeatUntilLoop runs its body at least once, repeating until the condition
// becomes true.
type RepeatUntilLoop struct {
	Condition Expression

	Body *SubBlock
}

func (*RepeatUntilLoop) node()     {}
func (*RepeatUntilLoop) stmtNode() {}
func (*RepeatUntilLoop) loopNode() {}

// LoopBody implements Loop.
func (l *RepeatUntilLoop) LoopBody() *SubBlock { return l.Body }

// BreakStatement terminates the innermost enclosing loop.
type BreakStatement struct{}

func (*BreakStatement) node()     {}
func (*BreakStatement) stmtNode() {}

// ContinueStatement skips to the next iteration of the innermost enclosing
// loop.
type ContinueStatement struct{}

func (*ContinueStatement) node()     {}
func (*ContinueStatement) stmtNode() {}
