package pomcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestTree() *BeliefTree[banditState, banditObs, banditInfoState] {
	tree := newBeliefTree[banditState, banditObs, banditInfoState]()
	tree.newRoot(banditInfoState{legalActions: []Action{0, 1}})
	return tree
}

func TestChildOrCreateIsIdempotent(t *testing.T) {
	tree := newTestTree()
	root := tree.Root()

	child1, created1 := tree.childOrCreate(root, 0, banditNoObs, root.data.Clone())
	require.True(t, created1)

	child2, created2 := tree.childOrCreate(root, 0, banditNoObs, root.data.Clone())
	require.False(t, created2)
	require.Same(t, child1, child2)
}

func TestChildLookupWithoutCreating(t *testing.T) {
	tree := newTestTree()
	root := tree.Root()

	require.Nil(t, tree.child(root, 0, banditNoObs))

	created, _ := tree.childOrCreate(root, 0, banditNoObs, root.data.Clone())
	require.Same(t, created, tree.child(root, 0, banditNoObs))
}

func TestPruneSiblingsKeepsOnlyReachableSubtree(t *testing.T) {
	tree := newTestTree()
	root := tree.Root()

	keepChild, _ := tree.childOrCreate(root, 0, banditObs(0), root.data.Clone())
	pruneChild, _ := tree.childOrCreate(root, 0, banditObs(1), root.data.Clone())
	grandchild, _ := tree.childOrCreate(keepChild, 1, banditNoObs, keepChild.data.Clone())

	tree.pruneSiblings(keepChild)

	require.Equal(t, keepChild.id, tree.root)
	require.Nil(t, tree.node(pruneChild.id))
	require.NotNil(t, tree.node(grandchild.id))
	require.Equal(t, noNode, keepChild.parent)
	require.False(t, keepChild.hasIncomingAction)
}
