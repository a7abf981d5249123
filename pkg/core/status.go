package core

import "strings"

// ControlType is the kind of a control as reported by the automation host.
type ControlType int

const (
	TypeUnknown ControlType = iota // Unknown kind; in a Search it matches any type
	TypeButton
	TypeText
	TypeEdit
	TypeWindow
	TypePane
	TypeGroup
	TypeList
	TypeListItem
	TypeCheckBox
	TypeRadioButton
	TypeComboBox
	TypeHyperlink
	TypeImage
	TypeMenu
	TypeMenuItem
	TypeTab
	TypeTabItem
	TypeTree
	TypeTreeItem
	TypeTable
	TypeCustom
)

var controlTypeNames = map[ControlType]string{
	TypeUnknown:     "unknown",
	TypeButton:      "button",
	TypeText:        "text",
	TypeEdit:        "edit",
	TypeWindow:      "window",
	TypePane:        "pane",
	TypeGroup:       "group",
	TypeList:        "list",
	TypeListItem:    "listitem",
	TypeCheckBox:    "checkbox",
	TypeRadioButton: "radiobutton",
	TypeComboBox:    "combobox",
	TypeHyperlink:   "hyperlink",
	TypeImage:       "image",
	TypeMenu:        "menu",
	TypeMenuItem:    "menuitem",
	TypeTab:         "tab",
	TypeTabItem:     "tabitem",
	TypeTree:        "tree",
	TypeTreeItem:    "treeitem",
	TypeTable:       "table",
	TypeCustom:      "custom",
}

// aliases maps host spellings that differ from the canonical names.
var controlTypeAliases = map[string]ControlType{
	"statictext": TypeText,
	"textfield":  TypeEdit,
	"textbox":    TypeEdit,
	"link":       TypeHyperlink,
	"switch":     TypeCheckBox,
	"cell":       TypeListItem,
	"other":      TypeCustom,
}

// String returns the canonical lower-case name of the control type
func (t ControlType) String() string {
	if name, ok := controlTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseControlType parses a control type name. Matching ignores case and
// the "XCUIElementType" and "ControlType." prefixes hosts put in front of
// their type names. The second result is false for unrecognised names.
func ParseControlType(s string) (ControlType, bool) {
	name := strings.TrimSpace(s)
	name = strings.TrimPrefix(name, "XCUIElementType")
	name = strings.TrimPrefix(name, "ControlType.")
	name = strings.ToLower(strings.ReplaceAll(name, " ", ""))

	for t, n := range controlTypeNames {
		if n == name {
			return t, true
		}
	}
	if t, ok := controlTypeAliases[name]; ok {
		return t, true
	}
	return TypeUnknown, false
}

// UnmarshalText implements encoding.TextUnmarshaler so types can be read
// from YAML and flags.
func (t *ControlType) UnmarshalText(text []byte) error {
	parsed, ok := ParseControlType(string(text))
	if !ok {
		return ErrInvalidConfig.WithMessage("unknown control type " + strings.TrimSpace(string(text)))
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (t ControlType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ControlState is the set of state flags of a control
type ControlState uint32

const (
	StateInvisible ControlState = 1 << iota // Not rendered
	StateCollapsed                          // Collapsed (tree item, expander)
	StateOffscreen                          // Outside the visible screen area
	StateDisabled                           // Not accepting input
	StateFocused                            // Has keyboard focus
	StateSelected                           // Selected
	StateChecked                            // Checked (check box, radio button)
	StateExpanded                           // Expanded
)

// StateHidden is the union of flags that make a control not shown on screen.
const StateHidden = StateInvisible | StateCollapsed | StateOffscreen

var stateNames = []struct {
	flag ControlState
	name string
}{
	{StateInvisible, "invisible"},
	{StateCollapsed, "collapsed"},
	{StateOffscreen, "offscreen"},
	{StateDisabled, "disabled"},
	{StateFocused, "focused"},
	{StateSelected, "selected"},
	{StateChecked, "checked"},
	{StateExpanded, "expanded"},
}

// Has returns true if every flag in f is set
func (s ControlState) Has(f ControlState) bool {
	return s&f == f
}

// IsShown returns true if none of the hidden flags is set
func (s ControlState) IsShown() bool {
	return s&StateHidden == 0
}

// String returns the set flags joined with "|", or "normal" when none is set
func (s ControlState) String() string {
	var parts []string
	for _, n := range stateNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "normal"
	}
	return strings.Join(parts, "|")
}

// ErrorCategory classifies the type of error for better debugging and reporting
type ErrorCategory int

const (
	ErrCategoryNone        ErrorCategory = iota // No error
	ErrCategoryArgument                         // Required reference missing
	ErrCategoryConfig                           // Control declaration or configuration missing/invalid
	ErrCategoryNotFound                         // No element satisfies the lookup
	ErrCategoryUnavailable                      // Host reports the element or tree as inaccessible
)

// String returns the string representation of ErrorCategory
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryArgument:
		return "argument"
	case ErrCategoryConfig:
		return "config"
	case ErrCategoryNotFound:
		return "not_found"
	case ErrCategoryUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}
