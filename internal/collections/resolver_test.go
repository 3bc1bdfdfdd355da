package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MunoMono/reference-library/internal/domain"
)

func node(key, name string, parent string) domain.CollectionNode {
	n := domain.CollectionNode{Key: key, Name: name}
	if parent != "" {
		n.ParentKey = &parent
	}
	return n
}

func TestResolvePaths(t *testing.T) {
	nodes := []domain.CollectionNode{
		node("A", "Archive", ""),
		node("B", "DDR", "A"),
		node("C", "Posters", "B"),
		node("D", "Theses", ""),
	}

	paths, err := ResolvePaths(nodes)
	require.NoError(t, err)

	assert.Equal(t, "Archive", paths["A"])
	assert.Equal(t, "Archive ▸ DDR", paths["B"])
	assert.Equal(t, "Archive ▸ DDR ▸ Posters", paths["C"])
	assert.Equal(t, "Theses", paths["D"])
}

func TestResolvePathsOrderIndependent(t *testing.T) {
	forward := []domain.CollectionNode{
		node("A", "Root", ""),
		node("B", "Mid", "A"),
		node("C", "Leaf", "B"),
	}
	reversed := []domain.CollectionNode{forward[2], forward[1], forward[0]}

	a, err := ResolvePaths(forward)
	require.NoError(t, err)
	b, err := ResolvePaths(reversed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolvePathsRepeatable(t *testing.T) {
	nodes := []domain.CollectionNode{
		node("A", "Root", ""),
		node("B", "Leaf", "A"),
	}
	first, err := ResolvePaths(nodes)
	require.NoError(t, err)
	second, err := ResolvePaths(nodes)
	require.NoError(t, err)
	assert.Equal(t, first["B"], second["B"])
}

func TestResolvePathsCycleFailsFast(t *testing.T) {
	nodes := []domain.CollectionNode{
		node("A", "Alpha", "B"),
		node("B", "Beta", "A"),
	}
	_, err := ResolvePaths(nodes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestResolvePathsSelfCycle(t *testing.T) {
	nodes := []domain.CollectionNode{node("A", "Ouroboros", "A")}
	_, err := ResolvePaths(nodes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"A"`)
}

func TestResolvePathsDanglingParentRootsThere(t *testing.T) {
	nodes := []domain.CollectionNode{node("B", "Orphan", "GONE")}
	paths, err := ResolvePaths(nodes)
	require.NoError(t, err)
	assert.Equal(t, "Orphan", paths["B"])
}

func TestSortedPaths(t *testing.T) {
	paths := map[string]string{
		"1": "zebra",
		"2": "Alpha",
		"3": "Alpha", // duplicate path collapses
		"4": "beta",
	}
	assert.Equal(t, []string{"Alpha", "beta", "zebra"}, SortedPaths(paths))
}
