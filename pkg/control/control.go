// Package control provides helpers for locating, probing and clicking
// controls through an automation host.
package control

import (
	"github.com/devicelab-dev/uitestext/pkg/core"
)

// Control is a handle to a control in the host's tree.
//
// A handle is either bound to a node (FromNode) or describes a search
// scoped to a container handle (FindBy, FindByID, Registry.Find). Search
// handles are resolved against the live tree every time they are used;
// nothing is cached between calls.
type Control struct {
	host      core.Host
	container *Control
	search    core.Search
	node      core.Node
	kind      string // declared name, when created through a Registry
}

// FromNode returns a handle bound to node.
func FromNode(host core.Host, node core.Node) *Control {
	return &Control{host: host, node: node}
}

// Host returns the automation host the handle delegates to.
func (c *Control) Host() core.Host {
	return c.host
}

// Container returns the handle the search is scoped to, or nil for bound handles.
func (c *Control) Container() *Control {
	return c.container
}

// Search returns a copy of the search the handle represents.
func (c *Control) Search() core.Search {
	return core.Search{Type: c.search.Type, Properties: c.search.Properties.Clone()}
}

// Node returns the bound node, or nil for search handles.
func (c *Control) Node() core.Node {
	return c.node
}

// Kind returns the name used for the control in log records: the declared
// name if the handle came from a Registry, otherwise the control type.
func (c *Control) Kind() string {
	if c.kind != "" {
		return c.kind
	}
	if c.node != nil {
		return c.node.Type().String()
	}
	return c.search.Type.String()
}

// String returns a human-readable description of the handle.
func (c *Control) String() string {
	if c.node != nil {
		return c.node.Type().String() + " " + core.Label(c.node)
	}
	return c.search.Describe()
}

// FindMatching asks the host for every node the handle matches.
// A bound handle matches its own node as long as the host still reports
// state for it.
func (c *Control) FindMatching() ([]core.Node, error) {
	if c == nil {
		return nil, core.InvalidArgument("control")
	}
	if c.node != nil {
		if _, err := c.node.State(); err != nil {
			return nil, err
		}
		return []core.Node{c.node}, nil
	}
	if c.container == nil {
		return nil, core.InvalidArgument("container")
	}

	scope, err := c.container.Resolve()
	if err != nil {
		return nil, err
	}
	return c.host.FindAll(scope, c.search)
}

// Resolve returns the first node the handle matches.
// Fails with core.ErrElementNotFound when there is none.
func (c *Control) Resolve() (core.Node, error) {
	if c == nil {
		return nil, core.InvalidArgument("control")
	}
	if c.node != nil {
		return c.node, nil
	}

	matches, err := c.FindMatching()
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, core.ErrElementNotFound.WithDetails(map[string]interface{}{
			"search": c.search.Describe(),
		})
	}
	return matches[0], nil
}
