package ir

// CloneExpression deep-copies an expression. Data type links and reference
// targets are links, not owned nodes, so they are shared, never copied.
func CloneExpression(e Expression) Expression {
	switch x := e.(type) {
	case nil:
		return nil
	case *BitLiteral:
		c := *x
		return &c
	case *IntLiteral:
		c := *x
		return &c
	case *RealLiteral:
		c := *x
		return &c
	case *ComplexLiteral:
		c := *x
		return &c
	case *RealMatrixLiteral:
		c := *x
		c.Value = make([][]float64, len(x.Value))
		for i, row := range x.Value {
			c.Value[i] = append([]float64(nil), row...)
		}
		return &c
	case *ComplexMatrixLiteral:
		c := *x
		c.Value = make([][]complex128, len(x.Value))
		for i, row := range x.Value {
			c.Value[i] = append([]complex128(nil), row...)
		}
		return &c
	case *StringLiteral:
		c := *x
		return &c
	case *JsonLiteral:
		c := *x
		c.Value = append([]byte(nil), x.Value...)
		return &c
	case *Reference:
		return CloneReference(x)
	case *FunctionCall:
		c := &FunctionCall{Function: x.Function}
		c.Operands = make([]Expression, len(x.Operands))
		for i, op := range x.Operands {
			c.Operands[i] = CloneExpression(op)
		}
		return c
	default:
		return nil
	}
}

// CloneReference deep-copies a reference, sharing the target link.
func CloneReference(r *Reference) *Reference {
	c := &Reference{Target: r.Target, Type: r.Type}
	c.Indices = make([]*IntLiteral, len(r.Indices))
	for i, idx := range r.Indices {
		lit := *idx
		c.Indices[i] = &lit
	}
	return c
}
