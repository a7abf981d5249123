// Package mock provides an in-memory automation host for testing without a
// real application.
package mock

import (
	"fmt"

	"github.com/devicelab-dev/uitestext/pkg/core"
)

// Node is an in-memory control. It counts state and child reads so tests
// can check how much of the tree an operation touched.
type Node struct {
	typ      core.ControlType
	id       string
	name     string
	class    string
	bounds   core.Bounds
	state    core.ControlState
	children []*Node

	stateErr    error
	childrenErr error

	stateReads    int
	childrenReads int
}

// NewNode creates a node with the given type, automation id and children.
func NewNode(typ core.ControlType, id string, children ...*Node) *Node {
	return &Node{
		typ:      typ,
		id:       id,
		children: children,
		bounds:   core.Bounds{Width: 100, Height: 20},
	}
}

// WithName sets the name and returns the node.
func (n *Node) WithName(name string) *Node { n.name = name; return n }

// WithClass sets the class name and returns the node.
func (n *Node) WithClass(class string) *Node { n.class = class; return n }

// WithState sets the state flags and returns the node.
func (n *Node) WithState(state core.ControlState) *Node { n.state = state; return n }

// WithBounds sets the bounds and returns the node.
func (n *Node) WithBounds(b core.Bounds) *Node { n.bounds = b; return n }

// FailState makes State return err.
func (n *Node) FailState(err error) *Node { n.stateErr = err; return n }

// FailChildren makes Children return err.
func (n *Node) FailChildren(err error) *Node { n.childrenErr = err; return n }

// SetState changes the state flags, simulating a UI update.
func (n *Node) SetState(state core.ControlState) { n.state = state }

// Append adds children, simulating a UI update.
func (n *Node) Append(children ...*Node) { n.children = append(n.children, children...) }

// StateReads returns how many times State was called.
func (n *Node) StateReads() int { return n.stateReads }

// ChildrenReads returns how many times Children was called.
func (n *Node) ChildrenReads() int { return n.childrenReads }

func (n *Node) Type() core.ControlType { return n.typ }
func (n *Node) Name() string           { return n.name }
func (n *Node) AutomationID() string   { return n.id }
func (n *Node) ClassName() string      { return n.class }
func (n *Node) Bounds() core.Bounds    { return n.bounds }

// State returns the configured state or error.
func (n *Node) State() (core.ControlState, error) {
	n.stateReads++
	if n.stateErr != nil {
		return 0, n.stateErr
	}
	return n.state, nil
}

// Children returns the configured children or error.
func (n *Node) Children() ([]core.Node, error) {
	n.childrenReads++
	if n.childrenErr != nil {
		return nil, n.childrenErr
	}
	out := make([]core.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out, nil
}

// String returns "type id" for test failure messages.
func (n *Node) String() string {
	return fmt.Sprintf("%s %s", n.typ, n.id)
}

// Config configures mock host behavior.
type Config struct {
	// FindErr is returned by every FindAll call when set
	FindErr error
	// ClickErr is returned by every Click call when set
	ClickErr error
}

// Host is a mock implementation of core.Host for testing.
type Host struct {
	Root   *Node
	Config Config

	findCalls  int
	clickCalls int
	clicked    []core.Node
}

// New creates a mock host over root.
func New(root *Node, cfg Config) *Host {
	return &Host{Root: root, Config: cfg}
}

// FindAll returns the descendants of scope matching search in pre-order.
// A nil scope searches from Root.
func (h *Host) FindAll(scope core.Node, search core.Search) ([]core.Node, error) {
	h.findCalls++
	if h.Config.FindErr != nil {
		return nil, h.Config.FindErr
	}

	if scope == nil {
		if h.Root == nil {
			return nil, core.ErrHostUnavailable
		}
		scope = h.Root
	}

	var matches []core.Node
	if err := collect(scope, search, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func collect(parent core.Node, search core.Search, out *[]core.Node) error {
	children, err := parent.Children()
	if err != nil {
		return err
	}
	for _, child := range children {
		if search.Matches(child) {
			*out = append(*out, child)
		}
		if err := collect(child, search, out); err != nil {
			return err
		}
	}
	return nil
}

// Click records the click.
func (h *Host) Click(node core.Node) error {
	h.clickCalls++
	if h.Config.ClickErr != nil {
		return h.Config.ClickErr
	}
	h.clicked = append(h.clicked, node)
	return nil
}

// FindCalls returns the number of FindAll calls.
func (h *Host) FindCalls() int { return h.findCalls }

// ClickCalls returns the number of Click calls.
func (h *Host) ClickCalls() int { return h.clickCalls }

// Clicked returns the successfully clicked nodes in order.
func (h *Host) Clicked() []core.Node { return h.clicked }
