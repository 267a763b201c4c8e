package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/ir/ops"
	"github.com/quantir/quantir/internal/testutil"
)

func TestRemapRewritesAllReferences(t *testing.T) {
	root := testutil.NewTestRoot(t)

	intType := ops.FindType(root, "int")
	oldObj, err := ops.AddPhysicalObject(root, ir.NewObject("old", intType, 4))
	require.NoError(t, err)
	newObj, err := ops.AddPhysicalObject(root, ir.NewObject("new", intType, 4))
	require.NoError(t, err)
	other, err := ops.AddPhysicalObject(root, ir.NewObject("other", intType, 4))
	require.NoError(t, err)

	ref := func(obj *ir.Object, idx uint64) *ir.Reference {
		r, err := ops.MakeReference(root, obj, idx)
		require.NoError(t, err)
		return r
	}

	set1, err := ops.MakeSetInstruction(root, ref(oldObj, 0), ref(oldObj, 1), nil)
	require.NoError(t, err)
	set2, err := ops.MakeSetInstruction(root, ref(other, 2), ref(oldObj, 3), nil)
	require.NoError(t, err)

	block := &ir.Block{Name: "body", Statements: []ir.Statement{set1, set2}}

	countNodes := func() int {
		n := 0
		ir.Visit(block, func(ir.Node) bool { n++; return true })
		return n
	}
	before := countNodes()

	ir.NewRemapper(map[*ir.Object]*ir.Object{oldObj: newObj}).Remap(block)

	// Every reference previously targeting old now targets new; nothing
	// else moved and no nodes appeared or vanished.
	var targets []*ir.Object
	ir.Visit(block, func(n ir.Node) bool {
		if r, ok := n.(*ir.Reference); ok {
			targets = append(targets, r.Target)
		}
		return true
	})
	require.Len(t, targets, 4)
	assert.NotContains(t, targets, oldObj)
	assert.Equal(t, []*ir.Object{newObj, newObj, other, newObj}, targets)
	assert.Equal(t, before, countNodes())
}

func TestRemapPreservesTypeAndIndices(t *testing.T) {
	root := testutil.NewTestRoot(t)

	bitType := ops.FindType(root, "bit")
	qubitType := ops.FindType(root, "qubit")
	spare, err := ops.AddPhysicalObject(root, ir.NewObject("spare", qubitType, 3))
	require.NoError(t, err)

	// A measurement-bit view keeps its viewed type across the remap.
	view, err := ops.MakeBitRef(root, 2)
	require.NoError(t, err)

	ir.NewRemapper(map[*ir.Object]*ir.Object{root.Platform.Qubits: spare}).Remap(view)

	assert.Same(t, spare, view.Target)
	assert.Equal(t, bitType, view.Type)
	require.Len(t, view.Indices, 1)
	assert.EqualValues(t, 2, view.Indices[0].Value)
}
