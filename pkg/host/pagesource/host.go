package pagesource

import (
	"fmt"
	"os"

	"github.com/devicelab-dev/uitestext/pkg/core"
	"github.com/devicelab-dev/uitestext/pkg/logger"
)

// Pointer simulates pointer input at screen coordinates.
type Pointer interface {
	Click(x, y int) error
}

// Host serves searches from the current snapshot and sends clicks to a
// Pointer at the centre of the element's bounds.
type Host struct {
	snap    *Snapshot
	pointer Pointer
}

// New creates a host over snap.
func New(snap *Snapshot, pointer Pointer) *Host {
	return &Host{snap: snap, pointer: pointer}
}

// LoadFile parses the snapshot at path and returns a host over it.
func LoadFile(path string, pointer Pointer) (*Host, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided snapshot file
	if err != nil {
		return nil, err
	}
	snap, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(snap, pointer), nil
}

// Root returns the root element of the current snapshot.
func (h *Host) Root() *Element {
	if h.snap == nil {
		return nil
	}
	return h.snap.Root
}

// Load replaces the current snapshot. Elements of the previous snapshot
// become unavailable.
func (h *Host) Load(data []byte) error {
	snap, err := Parse(data)
	if err != nil {
		return err
	}
	if h.snap != nil {
		h.snap.detached = true
	}
	h.snap = snap
	logger.Debug("page source reloaded")
	return nil
}

// FindAll returns the descendants of scope matching search in document
// order. A nil scope searches from the snapshot root.
func (h *Host) FindAll(scope core.Node, search core.Search) ([]core.Node, error) {
	if h.snap == nil {
		return nil, core.ErrHostUnavailable
	}

	var from *Element
	switch s := scope.(type) {
	case nil:
		from = h.snap.Root
	case *Element:
		from = s
	default:
		return nil, fmt.Errorf("scope %T does not belong to this host: %w", scope, core.ErrControlNotAvailable)
	}
	if from.snap != h.snap {
		return nil, core.ErrControlNotAvailable.WithMessage("scope belongs to a previous page source")
	}

	var matches []core.Node
	collect(from, search, &matches)
	logger.Debug("search %s under %s: %d match(es)", search.Describe(), from.typ, len(matches))
	return matches, nil
}

func collect(parent *Element, search core.Search, out *[]core.Node) {
	for _, child := range parent.children {
		if search.Matches(child) {
			*out = append(*out, child)
		}
		collect(child, search, out)
	}
}

// Click clicks the centre of node's bounds.
func (h *Host) Click(node core.Node) error {
	elem, ok := node.(*Element)
	if !ok || elem.snap != h.snap {
		return core.ErrElementNotAvailable.WithMessage("element does not belong to the current page source")
	}
	if elem.bounds.IsEmpty() {
		return core.ErrElementNotAvailable.
			WithMessage("element has no clickable area").
			WithDetails(map[string]interface{}{"id": core.Label(elem)})
	}
	if h.pointer == nil {
		return core.ErrHostUnavailable.WithMessage("no pointer configured")
	}

	x, y := elem.bounds.Center()
	if err := h.pointer.Click(x, y); err != nil {
		return fmt.Errorf("click at (%d, %d): %w", x, y, err)
	}
	return nil
}
