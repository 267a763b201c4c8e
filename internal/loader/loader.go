package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/ir/ops"
	"github.com/quantir/quantir/internal/prim"
)

// Descriptor is the typed form of a platform description file.
type Descriptor struct {
	// Name of the platform.
	Name string `yaml:"name"`

	// Qubits declares the main qubit register.
	Qubits QubitSpec `yaml:"qubits"`

	// Types declares the platform data types.
	Types []TypeSpec `yaml:"types"`

	// DefaultIntType and DefaultBitType name the types the literal
	// builders fall back to.
	DefaultIntType string `yaml:"default_int_type"`
	DefaultBitType string `yaml:"default_bit_type"`

	// ImplicitBitType, when set, names the measurement-bit type
	// associated with each qubit.
	ImplicitBitType string `yaml:"implicit_bit_type"`

	// Objects declares additional registers.
	Objects []ObjectSpec `yaml:"objects"`

	// Instructions declares the instruction set.
	Instructions []InstructionSpec `yaml:"instructions"`

	// Functions declares the classical function set.
	Functions []FunctionSpec `yaml:"functions"`
}

// QubitSpec declares the main qubit register.
type QubitSpec struct {
	// Name of the register; defaults to "qubits".
	Name string `yaml:"name"`

	// Count is the number of qubits.
	Count uint64 `yaml:"count"`
}

// TypeSpec declares one data type.
type TypeSpec struct {
	Name string `yaml:"name"`

	// Kind is one of qubit, bit, int, real, complex, real_matrix,
	// complex_matrix, string, json.
	Kind string `yaml:"kind"`

	// Bits and Signed apply to int kinds.
	Bits   int  `yaml:"bits"`
	Signed bool `yaml:"signed"`

	// Rows and Columns apply to matrix kinds.
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// ObjectSpec declares one register.
type ObjectSpec struct {
	Name  string   `yaml:"name"`
	Type  string   `yaml:"type"`
	Shape []uint64 `yaml:"shape"`
}

// OperandSpec declares one instruction operand.
type OperandSpec struct {
	// Mode is one of write, read, literal, commute_x, commute_y,
	// commute_z, measure, update; defaults to write.
	Mode string `yaml:"mode"`
	Type string `yaml:"type"`
}

// InstructionSpec declares one instruction type.
type InstructionSpec struct {
	Name string `yaml:"name"`

	// CQASM is the cQASM spelling; defaults to Name.
	CQASM string `yaml:"cqasm"`

	// Duration in cycles.
	Duration uint64 `yaml:"duration"`

	Operands []OperandSpec `yaml:"operands"`
}

// FunctionSpec declares one function type.
type FunctionSpec struct {
	Name     string   `yaml:"name"`
	Operands []string `yaml:"operands"`
	Return   string   `yaml:"return"`
}

// LoadFile reads and loads a platform descriptor file.
func LoadFile(path string) (*ir.Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading platform descriptor: %w", err)
	}
	return Load(data)
}

// Load builds an IR root from YAML descriptor data. All semantic validation
// is done by the ops builders; the loader only maps descriptor fields onto
// builder calls.
func Load(data []byte) (*ir.Root, error) {
	var desc Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parsing platform descriptor: %w", err)
	}
	return Build(&desc)
}

// Build builds an IR root from an already-parsed descriptor.
func Build(desc *Descriptor) (*ir.Root, error) {
	root := ir.NewRoot()
	root.Platform.Name = desc.Name

	for _, spec := range desc.Types {
		typ, err := makeType(spec)
		if err != nil {
			return nil, err
		}
		if _, err := ops.AddType(root, typ); err != nil {
			return nil, fmt.Errorf("type %q: %w", spec.Name, err)
		}
	}

	if err := resolveDefaults(root, desc); err != nil {
		return nil, err
	}

	if desc.Qubits.Count > 0 {
		name := desc.Qubits.Name
		if name == "" {
			name = "qubits"
		}
		qubitType, err := findQubitType(root)
		if err != nil {
			return nil, err
		}
		qubits, err := ops.AddPhysicalObject(root, ir.NewObject(name, qubitType, desc.Qubits.Count))
		if err != nil {
			return nil, fmt.Errorf("qubit register: %w", err)
		}
		root.Platform.Qubits = qubits
	}

	for _, spec := range desc.Objects {
		typ := ops.FindType(root, spec.Type)
		if typ == nil {
			return nil, fmt.Errorf("object %q: unknown type %q", spec.Name, spec.Type)
		}
		obj := ir.NewObject(spec.Name, typ, spec.Shape...)
		if _, err := ops.AddPhysicalObject(root, obj); err != nil {
			return nil, fmt.Errorf("object %q: %w", spec.Name, err)
		}
	}

	for _, spec := range desc.Instructions {
		ityp := &ir.InstructionType{
			Name:      spec.Name,
			CQASMName: spec.CQASM,
			Duration:  spec.Duration,
		}
		if ityp.CQASMName == "" {
			ityp.CQASMName = spec.Name
		}
		for _, op := range spec.Operands {
			ot, err := makeOperandType(root, spec.Name, op)
			if err != nil {
				return nil, err
			}
			ityp.OperandTypes = append(ityp.OperandTypes, ot)
		}
		if _, err := ops.AddInstructionType(root, ityp); err != nil {
			return nil, fmt.Errorf("instruction %q: %w", spec.Name, err)
		}
	}

	for _, spec := range desc.Functions {
		fn := &ir.FunctionType{Name: spec.Name}
		for _, typeName := range spec.Operands {
			typ := ops.FindType(root, typeName)
			if typ == nil {
				return nil, fmt.Errorf("function %q: unknown operand type %q", spec.Name, typeName)
			}
			fn.OperandTypes = append(fn.OperandTypes, &ir.OperandType{
				Mode:     prim.AccessRead,
				DataType: typ,
			})
		}
		ret := ops.FindType(root, spec.Return)
		if ret == nil {
			return nil, fmt.Errorf("function %q: unknown return type %q", spec.Name, spec.Return)
		}
		fn.ReturnType = ret
		if _, err := ops.AddFunctionType(root, fn); err != nil {
			return nil, fmt.Errorf("function %q: %w", spec.Name, err)
		}
	}

	return root, nil
}

func makeType(spec TypeSpec) (ir.DataType, error) {
	switch spec.Kind {
	case "qubit":
		return &ir.QubitType{Name: spec.Name}, nil
	case "bit":
		return &ir.BitType{Name: spec.Name}, nil
	case "int":
		return &ir.IntType{Name: spec.Name, Bits: spec.Bits, Signed: spec.Signed}, nil
	case "real":
		return &ir.RealType{Name: spec.Name}, nil
	case "complex":
		return &ir.ComplexType{Name: spec.Name}, nil
	case "real_matrix":
		return &ir.RealMatrixType{Name: spec.Name, Rows: spec.Rows, Columns: spec.Columns}, nil
	case "complex_matrix":
		return &ir.ComplexMatrixType{Name: spec.Name, Rows: spec.Rows, Columns: spec.Columns}, nil
	case "string":
		return &ir.StringType{Name: spec.Name}, nil
	case "json":
		return &ir.JsonType{Name: spec.Name}, nil
	default:
		return nil, fmt.Errorf("type %q: unknown kind %q", spec.Name, spec.Kind)
	}
}

func makeOperandType(root *ir.Root, instr string, spec OperandSpec) (*ir.OperandType, error) {
	typ := ops.FindType(root, spec.Type)
	if typ == nil {
		return nil, fmt.Errorf("instruction %q: unknown operand type %q", instr, spec.Type)
	}
	mode, err := parseMode(spec.Mode)
	if err != nil {
		return nil, fmt.Errorf("instruction %q: %w", instr, err)
	}
	return &ir.OperandType{Mode: mode, DataType: typ}, nil
}

func parseMode(mode string) (prim.AccessMode, error) {
	switch mode {
	case "", "write":
		return prim.AccessWrite, nil
	case "read":
		return prim.AccessRead, nil
	case "literal":
		return prim.AccessLiteral, nil
	case "commute_x":
		return prim.AccessCommuteX, nil
	case "commute_y":
		return prim.AccessCommuteY, nil
	case "commute_z":
		return prim.AccessCommuteZ, nil
	case "measure":
		return prim.AccessMeasure, nil
	case "update":
		return prim.AccessUpdate, nil
	default:
		return 0, fmt.Errorf("unknown access mode %q", mode)
	}
}

func resolveDefaults(root *ir.Root, desc *Descriptor) error {
	if desc.DefaultIntType != "" {
		typ := ops.FindType(root, desc.DefaultIntType)
		if typ == nil {
			return fmt.Errorf("unknown default int type %q", desc.DefaultIntType)
		}
		root.Platform.DefaultIntType = typ
	}
	if desc.DefaultBitType != "" {
		typ := ops.FindType(root, desc.DefaultBitType)
		if typ == nil {
			return fmt.Errorf("unknown default bit type %q", desc.DefaultBitType)
		}
		root.Platform.DefaultBitType = typ
	}
	if desc.ImplicitBitType != "" {
		typ := ops.FindType(root, desc.ImplicitBitType)
		if typ == nil {
			return fmt.Errorf("unknown implicit bit type %q", desc.ImplicitBitType)
		}
		root.Platform.ImplicitBitType = typ
	}
	return nil
}

func findQubitType(root *ir.Root) (ir.DataType, error) {
	for _, typ := range root.Platform.DataTypes {
		if ir.IsQuantumType(typ) {
			return typ, nil
		}
	}
	return nil, fmt.Errorf("platform declares qubits but no qubit data type")
}
