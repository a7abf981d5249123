// Package pagesource implements an automation host over a UI hierarchy
// XML snapshot.
package pagesource

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/devicelab-dev/uitestext/pkg/core"
)

// Element is a control parsed from page source XML.
type Element struct {
	typ          core.ControlType
	name         string
	automationID string
	className    string
	bounds       core.Bounds
	state        core.ControlState
	children     []*Element
	parent       *Element
	depth        int
	snap         *Snapshot
}

// Snapshot is a parsed hierarchy. Once a Host loads a newer snapshot the
// old one is detached and its elements report ErrElementNotAvailable.
type Snapshot struct {
	Root     *Element
	detached bool
}

func (e *Element) Type() core.ControlType { return e.typ }
func (e *Element) Name() string           { return e.name }
func (e *Element) AutomationID() string   { return e.automationID }
func (e *Element) ClassName() string      { return e.className }
func (e *Element) Bounds() core.Bounds    { return e.bounds }

// Parent returns the parent element, nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Depth returns the depth below the root.
func (e *Element) Depth() int { return e.depth }

// State returns the state flags parsed from the snapshot.
func (e *Element) State() (core.ControlState, error) {
	if e.snap != nil && e.snap.detached {
		return 0, core.ErrElementNotAvailable
	}
	return e.state, nil
}

// Children returns the child elements in document order.
func (e *Element) Children() ([]core.Node, error) {
	if e.snap != nil && e.snap.detached {
		return nil, core.ErrElementNotAvailable
	}
	out := make([]core.Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out, nil
}

// Parse parses a hierarchy XML document. Supported layouts:
//
//   - <hierarchy> wrapper with elements named after their control type
//     (<window>, <button>, ...) or carrying a type attribute
//   - iOS page source (<AppiumAUT> root, XCUIElementType* tags)
//   - Android dumps (<node class="android.widget.TextView" ...>)
//
// The returned snapshot's root is a pane standing for the wrapper; it is
// not part of the document's elements.
func Parse(data []byte) (*Snapshot, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	snap := &Snapshot{}
	root := &Element{typ: core.TypePane, name: "hierarchy", snap: snap}
	snap.Root = root

	var parseElement func(start xml.StartElement, parent *Element) error
	parseElement = func(start xml.StartElement, parent *Element) error {
		elem := newElement(start)
		elem.parent = parent
		elem.depth = parent.depth + 1
		elem.snap = snap
		parent.children = append(parent.children, elem)

		for {
			token, err := decoder.Token()
			if err != nil {
				return err
			}
			switch t := token.(type) {
			case xml.StartElement:
				if err := parseElement(t, elem); err != nil {
					return err
				}
			case xml.EndElement:
				return nil
			}
		}
	}

	foundRoot := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse page source: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		// Wrapper elements contribute no control of their own
		if isWrapper(start.Name.Local) {
			foundRoot = true
			continue
		}
		foundRoot = true
		if err := parseElement(start, root); err != nil {
			return nil, fmt.Errorf("parse page source: %w", err)
		}
	}

	if !foundRoot {
		return nil, fmt.Errorf("invalid page source: no elements found")
	}
	return snap, nil
}

func isWrapper(tag string) bool {
	return tag == "hierarchy" || tag == "AppiumAUT"
}

func newElement(start xml.StartElement) *Element {
	elem := &Element{}
	typeName := start.Name.Local
	var name, label string

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "type":
			typeName = attr.Value
		case "automationId", "automation-id", "resource-id":
			elem.automationID = attr.Value
		case "name":
			name = attr.Value
		case "label", "text", "content-desc":
			if label == "" {
				label = attr.Value
			}
		case "className", "class":
			elem.className = attr.Value
		case "bounds":
			elem.bounds = parseBounds(attr.Value)
		case "x":
			elem.bounds.X = atoi(attr.Value)
		case "y":
			elem.bounds.Y = atoi(attr.Value)
		case "width":
			elem.bounds.Width = atoi(attr.Value)
		case "height":
			elem.bounds.Height = atoi(attr.Value)
		case "visible", "displayed":
			setFlag(&elem.state, core.StateInvisible, attr.Value == "false")
		case "offscreen":
			setFlag(&elem.state, core.StateOffscreen, attr.Value == "true")
		case "collapsed":
			setFlag(&elem.state, core.StateCollapsed, attr.Value == "true")
		case "enabled":
			setFlag(&elem.state, core.StateDisabled, attr.Value == "false")
		case "focused":
			setFlag(&elem.state, core.StateFocused, attr.Value == "true")
		case "selected":
			setFlag(&elem.state, core.StateSelected, attr.Value == "true")
		case "checked":
			setFlag(&elem.state, core.StateChecked, attr.Value == "true")
		case "expanded":
			setFlag(&elem.state, core.StateExpanded, attr.Value == "true")
		}
	}

	// iOS uses name for the accessibility identifier and label for the text
	if strings.HasPrefix(typeName, "XCUIElementType") {
		if elem.automationID == "" {
			elem.automationID = name
		}
		elem.name = label
	} else if name != "" {
		elem.name = name
	} else {
		elem.name = label
	}

	// Android dumps name every element "node" and put the widget in class
	if typeName == "node" && elem.className != "" {
		typeName = elem.className[strings.LastIndex(elem.className, ".")+1:]
	}
	elem.typ = resolveType(typeName)
	return elem
}

// platformTypes maps iOS and Android type names that have no generic
// spelling to control types.
var platformTypes = map[string]core.ControlType{
	"application":     core.TypeWindow,
	"securetextfield": core.TypeEdit,
	"navigationbar":   core.TypePane,
	"textview":        core.TypeText,
	"edittext":        core.TypeEdit,
	"imageview":       core.TypeImage,
	"imagebutton":     core.TypeButton,
	"framelayout":     core.TypeGroup,
	"linearlayout":    core.TypeGroup,
	"recyclerview":    core.TypeList,
	"listview":        core.TypeList,
}

func resolveType(name string) core.ControlType {
	if t, ok := core.ParseControlType(name); ok {
		return t
	}
	if t, ok := platformTypes[strings.ToLower(strings.TrimPrefix(name, "XCUIElementType"))]; ok {
		return t
	}
	return core.TypeUnknown
}

func setFlag(state *core.ControlState, flag core.ControlState, on bool) {
	if on {
		*state |= flag
	} else {
		*state &^= flag
	}
}

func atoi(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// parseBounds parses the Android bounds string "[x1,y1][x2,y2]".
func parseBounds(s string) core.Bounds {
	s = strings.ReplaceAll(s, "][", ",")
	s = strings.Trim(s, "[]")
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return core.Bounds{}
	}

	x1, y1, x2, y2 := atoi(parts[0]), atoi(parts[1]), atoi(parts[2]), atoi(parts[3])
	return core.Bounds{
		X:      x1,
		Y:      y1,
		Width:  x2 - x1,
		Height: y2 - y1,
	}
}
