package core

// Node is a handle into the control tree owned by the automation host.
// The tree may change at any time; State and Children read the current
// value and can fail with ErrControlNotAvailable or ErrElementNotAvailable
// once the underlying element is gone.
type Node interface {
	Type() ControlType
	Name() string
	AutomationID() string
	ClassName() string
	Bounds() Bounds

	// State returns the current state flags
	State() (ControlState, error)

	// Children returns the direct children in host order
	Children() ([]Node, error)
}

// Host is the automation host the control helpers delegate to.
// Implementations: host/mock (in-memory), host/pagesource (XML snapshot).
type Host interface {
	// FindAll returns the descendants of scope matching search, in
	// host order. A nil scope means the host's root.
	FindAll(scope Node, search Search) ([]Node, error)

	// Click simulates a primary pointer click on node
	Click(node Node) error
}

// Search is the filter a control handle hands to the host.
type Search struct {
	Type       ControlType // TypeUnknown matches any type
	Properties PropertyExpressions
}

// Matches reports whether node satisfies the search.
func (s Search) Matches(node Node) bool {
	if s.Type != TypeUnknown && node.Type() != s.Type {
		return false
	}
	return s.Properties.Matches(node)
}

// Describe returns a human-readable description like button[AutomationId="ok"].
// A search for any type is written as *.
func (s Search) Describe() string {
	typ := s.Type.String()
	if s.Type == TypeUnknown {
		typ = "*"
	}
	props := s.Properties.Describe()
	if props == "" {
		return typ
	}
	return typ + "[" + props + "]"
}

// Bounds represents element position and size
type Bounds struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Center returns the center point of the bounds
func (b Bounds) Center() (int, int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Contains checks if a point is within the bounds
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// IsEmpty returns true if the bounds have no area
func (b Bounds) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Label returns the identifier used to refer to a node in logs:
// the automation id, or the name when no automation id is set.
func Label(n Node) string {
	if id := n.AutomationID(); id != "" {
		return id
	}
	return n.Name()
}
