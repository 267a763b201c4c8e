package ops

import (
	"github.com/quantir/quantir/internal/ir"
)

// NumQubits returns the extent of the main qubit register.
func NumQubits(root *ir.Root) (uint64, error) {
	qubits := root.Platform.Qubits
	if qubits == nil || len(qubits.Shape) != 1 {
		return 0, ir.Errorf(ir.ErrInternalConsistency,
			"main qubit register must be one-dimensional")
	}
	return qubits.Shape[0], nil
}

// DurationOf returns the duration of an instruction in quantum cycles. A
// custom instruction takes its instruction type's duration and a wait its
// own duration; every other instruction takes zero cycles.
func DurationOf(insn ir.Instruction) uint64 {
	switch x := insn.(type) {
	case *ir.CustomInstruction:
		return x.InstructionType.Duration
	case *ir.WaitInstruction:
		return x.Duration
	default:
		return 0
	}
}

// DurationOfBlock returns the duration of a statement sequence in quantum
// cycles: the maximum over its instructions of scheduled cycle plus
// duration. Structured control-flow statements count as zero cycles.
//
// The whole sequence always has to be scanned; the first instruction may
// outlast everything after it.
func DurationOfBlock(statements []ir.Statement) uint64 {
	var duration uint64
	for _, stmt := range statements {
		insn, ok := stmt.(ir.Instruction)
		if !ok {
			continue
		}
		if end := insn.Scheduled() + DurationOf(insn); end > duration {
			duration = end
		}
	}
	return duration
}

// QubitOperandCount returns the number of qubit-typed operands in a custom
// instruction's remaining prototype. A non-custom instruction has no qubit
// operands. A nonzero count identifies a quantum gate.
func QubitOperandCount(insn ir.Instruction) int {
	custom, ok := insn.(*ir.CustomInstruction)
	if !ok {
		return 0
	}
	count := 0
	for _, ot := range custom.InstructionType.OperandTypes {
		if ir.IsQuantumType(ot.DataType) {
			count++
		}
	}
	return count
}
