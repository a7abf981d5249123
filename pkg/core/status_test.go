package core

import "testing"

func TestControlType_String(t *testing.T) {
	tests := []struct {
		typ      ControlType
		expected string
	}{
		{TypeUnknown, "unknown"},
		{TypeButton, "button"},
		{TypeText, "text"},
		{TypeEdit, "edit"},
		{TypeListItem, "listitem"},
		{TypeCustom, "custom"},
		{ControlType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("ControlType(%d).String() = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}

func TestParseControlType(t *testing.T) {
	tests := []struct {
		input    string
		expected ControlType
		ok       bool
	}{
		{"button", TypeButton, true},
		{"Button", TypeButton, true},
		{" TEXT ", TypeText, true},
		{"XCUIElementTypeStaticText", TypeText, true},
		{"XCUIElementTypeTextField", TypeEdit, true},
		{"ControlType.CheckBox", TypeCheckBox, true},
		{"List Item", TypeListItem, true},
		{"link", TypeHyperlink, true},
		{"unknown", TypeUnknown, true},
		{"spaceship", TypeUnknown, false},
		{"", TypeUnknown, false},
	}

	for _, tt := range tests {
		got, ok := ParseControlType(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseControlType(%q) = (%s, %v), want (%s, %v)", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestControlType_UnmarshalText(t *testing.T) {
	var typ ControlType
	if err := typ.UnmarshalText([]byte("hyperlink")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ != TypeHyperlink {
		t.Errorf("got %s, want hyperlink", typ)
	}

	if err := typ.UnmarshalText([]byte("warp-drive")); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestControlState_IsShown(t *testing.T) {
	tests := []struct {
		state    ControlState
		expected bool
	}{
		{0, true},
		{StateFocused | StateSelected, true},
		{StateDisabled, true},
		{StateInvisible, false},
		{StateCollapsed, false},
		{StateOffscreen, false},
		{StateFocused | StateOffscreen, false},
	}

	for _, tt := range tests {
		if got := tt.state.IsShown(); got != tt.expected {
			t.Errorf("ControlState(%s).IsShown() = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestControlState_Has(t *testing.T) {
	s := StateFocused | StateChecked

	if !s.Has(StateFocused) {
		t.Error("expected focused")
	}
	if !s.Has(StateFocused | StateChecked) {
		t.Error("expected focused|checked")
	}
	if s.Has(StateFocused | StateSelected) {
		t.Error("did not expect selected")
	}
}

func TestControlState_String(t *testing.T) {
	tests := []struct {
		state    ControlState
		expected string
	}{
		{0, "normal"},
		{StateInvisible, "invisible"},
		{StateCollapsed | StateOffscreen, "collapsed|offscreen"},
		{StateDisabled | StateExpanded, "disabled|expanded"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestErrorCategory_String(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		expected string
	}{
		{ErrCategoryNone, "none"},
		{ErrCategoryArgument, "argument"},
		{ErrCategoryConfig, "config"},
		{ErrCategoryNotFound, "not_found"},
		{ErrCategoryUnavailable, "unavailable"},
		{ErrorCategory(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.expected {
			t.Errorf("ErrorCategory(%d).String() = %q, want %q", tt.category, got, tt.expected)
		}
	}
}
