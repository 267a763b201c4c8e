package ops

import (
	"sort"
	"strings"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/prim"
)

// AddOrFindInstructionType adds an instruction type to the platform, or
// returns the matching specialization without changing the IR if one already
// existed. The boolean reports whether anything was added.
//
// The incoming instruction type must be fully generalized: no template
// operands, no specializations, no generalization parent. Template operands
// are attached through the separate argument; the specialization tree is
// grown as needed, one level per template operand. Decomposition rules on
// the incoming type end up on the final (most specialized) node only.
func AddOrFindInstructionType(
	root *ir.Root,
	ityp *ir.InstructionType,
	templateOperands []ir.Expression,
) (*ir.InstructionType, bool, error) {
	if len(ityp.TemplateOperands) != 0 || len(ityp.Specializations) != 0 || ityp.Generalization != nil {
		return nil, false, ir.Errorf(ir.ErrInternalConsistency,
			"incoming instruction type %q is not fully generalized", ityp.Name)
	}
	if !prim.IsValidIdentifier(ityp.Name) {
		return nil, false, ir.Errorf(ir.ErrInvalidName,
			"invalid name for new instruction type: %q is not a valid identifier", ityp.Name)
	}

	// Locate the generalized overload by (name, operand data types).
	instrs := root.Platform.Instructions
	i := sort.Search(len(instrs), func(i int) bool {
		return instrs[i].Name >= ityp.Name
	})
	pos := i
	exists := false
	for ; pos < len(instrs) && instrs[pos].Name == ityp.Name; pos++ {
		if operandTypesMatch(instrs[pos].OperandTypes, ityp.OperandTypes) {
			exists = true
			break
		}
	}

	added := false
	var cur *ir.InstructionType
	if !exists {
		// Insert a clone at the lower-bound position so the registry
		// stays sorted. Decomposition rules are held back for the
		// eventual leaf.
		clone := cloneGeneralized(ityp)
		clone.Decompositions = nil
		root.Platform.Instructions = insertAt(instrs, pos, clone)
		cur = clone
		added = true
	} else {
		// The first-registered overload defines the canonical access
		// modes; copy them back onto the incoming instance so callers
		// observe them.
		cur = instrs[pos]
		for i, ot := range cur.OperandTypes {
			ityp.OperandTypes[i].Mode = ot.Mode
		}
	}

	// Create or descend into the specializations, one template operand at
	// a time.
	for i, op := range templateOperands {
		found := false
		for _, spec := range cur.Specializations {
			if ir.ExprEquals(spec.TemplateOperands[len(spec.TemplateOperands)-1], op) {
				cur = spec
				found = true
				break
			}
		}
		if found {
			continue
		}

		spec := cloneGeneralized(ityp)
		spec.Decompositions = nil
		for j := 0; j <= i; j++ {
			if len(spec.OperandTypes) == 0 {
				return nil, false, ir.Errorf(ir.ErrOperandArity,
					"instruction type %q has %d operand(s) but %d template operand(s) were given",
					ityp.Name, len(ityp.OperandTypes), len(templateOperands))
			}
			if spec.OperandTypes[0].DataType != TypeOf(templateOperands[j]) {
				return nil, false, ir.Errorf(ir.ErrTypeMismatch,
					"template operand %d of instruction type %q has type %s, expected %s",
					j, ityp.Name,
					TypeOf(templateOperands[j]).TypeName(),
					spec.OperandTypes[0].DataType.TypeName())
			}
			spec.OperandTypes = spec.OperandTypes[1:]
			spec.TemplateOperands = append(spec.TemplateOperands, ir.CloneExpression(templateOperands[j]))
		}
		spec.Generalization = cur
		cur.Specializations = append(cur.Specializations, spec)
		added = true
		cur = spec
	}

	// Whatever is deepest carries the decomposition rules.
	if added {
		cur.Decompositions = ityp.Decompositions
	}

	return cur, added, nil
}

// AddInstructionType adds an instruction type to the platform and returns
// the resulting (most specialized) node. Adding a type whose specialization
// already exists is a duplicate-definition error.
func AddInstructionType(
	root *ir.Root,
	ityp *ir.InstructionType,
	templateOperands ...ir.Expression,
) (*ir.InstructionType, error) {
	result, added, err := AddOrFindInstructionType(root, ityp, templateOperands)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, ir.Errorf(ir.ErrDuplicateDefinition,
			"duplicate instruction type: %s", ir.Describe(result))
	}
	return result, nil
}

// AddDecompositionRule attaches decomposition rules to an instruction type,
// creating the type (and its specializations) if needed. When the targeted
// specialization already exists, the incoming type's rules extend the
// existing leaf's rule list.
func AddDecompositionRule(
	root *ir.Root,
	ityp *ir.InstructionType,
	templateOperands ...ir.Expression,
) (*ir.InstructionType, error) {
	result, added, err := AddOrFindInstructionType(root, ityp, templateOperands)
	if err != nil {
		return nil, err
	}
	if !added {
		result.Decompositions = append(result.Decompositions, ityp.Decompositions...)
	}
	return result, nil
}

// FindInstructionType returns the generalized instruction type with the
// given name and positional operand data types.
//
// When no overload matches but the name is known and generateOverload is
// set, a new overload is fabricated from the first type with that name,
// conservatively assuming write access for every operand, inserted into the
// registry, and returned. Otherwise a failed lookup returns nil.
func FindInstructionType(
	root *ir.Root,
	name string,
	types []ir.DataType,
	generateOverload bool,
) *ir.InstructionType {
	instrs := root.Platform.Instructions
	first := sort.Search(len(instrs), func(i int) bool {
		return instrs[i].Name >= name
	})
	pos := first
	for ; pos < len(instrs) && instrs[pos].Name == name; pos++ {
		if operandDataTypesMatch(instrs[pos].OperandTypes, types) {
			return instrs[pos]
		}
	}

	// pos equalling first means no instruction has this name at all.
	if pos == first || !generateOverload {
		return nil
	}

	ityp := &ir.InstructionType{
		Name:      instrs[first].Name,
		CQASMName: instrs[first].CQASMName,
		Duration:  instrs[first].Duration,
	}
	for _, typ := range types {
		ityp.OperandTypes = append(ityp.OperandTypes, &ir.OperandType{
			Mode:     prim.AccessWrite,
			DataType: typ,
		})
	}

	// Insert just after the other overloads of this name to keep the
	// registry sorted.
	root.Platform.Instructions = insertAt(instrs, pos, ityp)

	return ityp
}

// cloneGeneralized copies a fully generalized instruction type, giving the
// copy its own operand type list.
func cloneGeneralized(t *ir.InstructionType) *ir.InstructionType {
	clone := &ir.InstructionType{
		Name:      t.Name,
		CQASMName: t.CQASMName,
		Duration:  t.Duration,
	}
	clone.OperandTypes = make([]*ir.OperandType, len(t.OperandTypes))
	for i, ot := range t.OperandTypes {
		c := *ot
		clone.OperandTypes[i] = &c
	}
	clone.Decompositions = append([]*ir.DecompositionRule(nil), t.Decompositions...)
	return clone
}

// typeListString renders a comma-separated operand type list for error
// messages.
func typeListString(types []ir.DataType) string {
	var sb strings.Builder
	for i, t := range types {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.TypeName())
	}
	return sb.String()
}
