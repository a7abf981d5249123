package control

import (
	"github.com/devicelab-dev/uitestext/pkg/core"
)

// Criterion selects a node during traversal.
type Criterion func(node core.Node) (bool, error)

// IsVisible reports whether node is shown on screen: none of the
// invisible, collapsed or offscreen flags is set on its current state.
func IsVisible(node core.Node) (bool, error) {
	if node == nil {
		return false, core.InvalidArgument("node")
	}
	state, err := node.State()
	if err != nil {
		return false, err
	}
	return state.IsShown(), nil
}

// VisibleOfType matches visible nodes of type typ. State is only read for
// nodes of the right type.
func VisibleOfType(typ core.ControlType) Criterion {
	return func(node core.Node) (bool, error) {
		if node.Type() != typ {
			return false, nil
		}
		return IsVisible(node)
	}
}

// FindFirst returns the first descendant of root, in depth-first
// pre-order, that satisfies match. Fails with core.ErrElementNotFound
// when no descendant does.
func FindFirst(root core.Node, match Criterion) (core.Node, error) {
	if root == nil {
		return nil, core.InvalidArgument("root")
	}

	var found core.Node
	err := Walk(root, func(node core.Node, _ int) error {
		ok, err := match(node)
		if err != nil {
			return err
		}
		if ok {
			found = node
			return StopWalk
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, core.ErrElementNotFound
	}
	return found, nil
}

// FirstVisibleDescendant returns the first visible descendant of root of
// type typ in depth-first pre-order. The root itself is not a candidate.
// Fails with core.ErrNoVisibleMatch (which matches core.ErrElementNotFound)
// when there is none.
func FirstVisibleDescendant(root core.Node, typ core.ControlType) (core.Node, error) {
	node, err := FindFirst(root, VisibleOfType(typ))
	if err == core.ErrElementNotFound {
		return nil, core.ErrNoVisibleMatch.WithDetails(map[string]interface{}{
			"type": typ.String(),
			"root": core.Label(root),
		})
	}
	return node, err
}
