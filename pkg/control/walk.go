package control

import (
	"errors"
	"fmt"

	"github.com/devicelab-dev/uitestext/pkg/core"
)

// SkipChildren can be returned by a WalkFunc to skip the visited node's subtree.
var SkipChildren = errors.New("skip children")

// StopWalk can be returned by a WalkFunc to end the walk without error.
var StopWalk = errors.New("stop walk")

// WalkFunc is called for every visited node with its depth below the root
// (direct children have depth 1).
type WalkFunc func(node core.Node, depth int) error

type pending struct {
	siblings []core.Node
	depth    int
}

// Walk visits the descendants of root in depth-first pre-order: a node,
// then its whole subtree, then its next sibling. Children are enumerated
// only when the walk descends into a node, so stopping early avoids
// reading the rest of the tree.
func Walk(root core.Node, fn WalkFunc) error {
	if root == nil {
		return core.InvalidArgument("root")
	}

	children, err := root.Children()
	if err != nil {
		return fmt.Errorf("enumerate children of %s: %w", root.Type(), err)
	}

	stack := []pending{{siblings: children, depth: 1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.siblings) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		node, depth := top.siblings[0], top.depth
		top.siblings = top.siblings[1:]
		if node == nil {
			continue
		}

		switch err := fn(node, depth); {
		case errors.Is(err, StopWalk):
			return nil
		case errors.Is(err, SkipChildren):
			continue
		case err != nil:
			return err
		}

		kids, err := node.Children()
		if err != nil {
			return fmt.Errorf("enumerate children of %s %q: %w", node.Type(), core.Label(node), err)
		}
		if len(kids) > 0 {
			stack = append(stack, pending{siblings: kids, depth: depth + 1})
		}
	}
	return nil
}
