package collections

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MunoMono/reference-library/internal/domain"
)

// PathSeparator joins collection names root to leaf.
const PathSeparator = " ▸ "

// ResolvePaths computes the breadcrumb path for every node in the forest.
// The result is independent of input order: paths are memoized per key, and
// each path is computed at most once. A parent cycle is a fatal configuration
// error naming the node where it was detected. A parent key that points at a
// node missing from the snapshot is tolerated; the walk roots there.
func ResolvePaths(nodes []domain.CollectionNode) (map[string]string, error) {
	arena := make(map[string]domain.CollectionNode, len(nodes))
	for _, n := range nodes {
		arena[n.Key] = n
	}

	memo := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if _, err := resolve(n.Key, arena, memo, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	return memo, nil
}

func resolve(key string, arena map[string]domain.CollectionNode, memo map[string]string, walking map[string]bool) (string, error) {
	if path, ok := memo[key]; ok {
		return path, nil
	}
	if walking[key] {
		node := arena[key]
		return "", fmt.Errorf("collection parent cycle detected at %q (%s)", key, node.Name)
	}
	walking[key] = true

	node := arena[key]
	path := node.Name
	if node.ParentKey != nil {
		if _, known := arena[*node.ParentKey]; known {
			parentPath, err := resolve(*node.ParentKey, arena, memo, walking)
			if err != nil {
				return "", err
			}
			path = parentPath + PathSeparator + node.Name
		}
	}
	memo[key] = path
	return path, nil
}

// SortedPaths returns the distinct breadcrumb paths of a resolution result,
// ordered case-insensitively.
func SortedPaths(byKey map[string]string) []string {
	seen := make(map[string]bool, len(byKey))
	paths := make([]string, 0, len(byKey))
	for _, p := range byKey {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return strings.ToLower(paths[i]) < strings.ToLower(paths[j])
	})
	return paths
}
