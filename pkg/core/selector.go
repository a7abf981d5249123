package core

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Property names understood by the hosts.
const (
	PropAutomationID = "AutomationId"
	PropName         = "Name"
	PropClassName    = "ClassName"
	PropControlType  = "ControlType"
)

// Operator is the comparison used by a PropertyExpression
type Operator int

const (
	OpEqualTo  Operator = iota // Exact match
	OpContains                 // Case-insensitive substring
)

// String returns the string representation of Operator
func (o Operator) String() string {
	switch o {
	case OpEqualTo:
		return "equalTo"
	case OpContains:
		return "contains"
	default:
		return "unknown"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Operator) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "equalto", "equals", "eq", "=":
		*o = OpEqualTo
	case "contains", "~":
		*o = OpContains
	default:
		return ErrInvalidConfig.WithMessage("unknown property operator " + string(text))
	}
	return nil
}

// PropertyExpression is a single search condition on a control property.
type PropertyExpression struct {
	Name     string   `yaml:"name"`
	Value    string   `yaml:"value"`
	Operator Operator `yaml:"operator"`
}

// Matches reports whether the node property satisfies the expression.
// Unknown property names never match.
func (p PropertyExpression) Matches(node Node) bool {
	if strings.EqualFold(p.Name, PropControlType) {
		if t, ok := ParseControlType(p.Value); ok && p.Operator == OpEqualTo {
			return node.Type() == t
		}
	}

	actual, ok := propertyValue(node, p.Name)
	if !ok {
		return false
	}

	switch p.Operator {
	case OpContains:
		return containsIgnoreCase(actual, p.Value)
	default:
		return actual == p.Value
	}
}

// String returns a description like AutomationId="ok" or Name~"Save".
func (p PropertyExpression) String() string {
	op := "="
	if p.Operator == OpContains {
		op = "~"
	}
	return fmt.Sprintf("%s%s%q", p.Name, op, p.Value)
}

func propertyValue(node Node, name string) (string, bool) {
	switch {
	case strings.EqualFold(name, PropAutomationID):
		return node.AutomationID(), true
	case strings.EqualFold(name, PropName):
		return node.Name(), true
	case strings.EqualFold(name, PropClassName):
		return node.ClassName(), true
	case strings.EqualFold(name, PropControlType):
		return node.Type().String(), true
	default:
		return "", false
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// PropertyExpressions is an ordered collection of search conditions.
// All conditions must hold for a node to match.
type PropertyExpressions []PropertyExpression

// Add appends an EqualTo condition and returns the collection.
func (ps PropertyExpressions) Add(name, value string) PropertyExpressions {
	return append(ps, PropertyExpression{Name: name, Value: value, Operator: OpEqualTo})
}

// AddRange appends all conditions of other.
func (ps PropertyExpressions) AddRange(other PropertyExpressions) PropertyExpressions {
	return append(ps, other...)
}

// Get returns the value of the first condition on name.
func (ps PropertyExpressions) Get(name string) (string, bool) {
	for _, p := range ps {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// Clone returns an independent copy.
func (ps PropertyExpressions) Clone() PropertyExpressions {
	if ps == nil {
		return nil
	}
	out := make(PropertyExpressions, len(ps))
	copy(out, ps)
	return out
}

// IsEmpty returns true if no condition is set.
func (ps PropertyExpressions) IsEmpty() bool {
	return len(ps) == 0
}

// Matches reports whether node satisfies every condition.
func (ps PropertyExpressions) Matches(node Node) bool {
	for _, p := range ps {
		if !p.Matches(node) {
			return false
		}
	}
	return true
}

// Describe returns the conditions joined with ", ".
func (ps PropertyExpressions) Describe() string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}

// UnmarshalYAML accepts three forms:
//
//	login                            # scalar: AutomationId equal to value
//	{AutomationId: login, Name: OK}  # mapping: EqualTo per key, in order
//	- {name: Name, value: Sav, operator: contains}
func (ps *PropertyExpressions) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*ps = PropertyExpressions{}.Add(PropAutomationID, node.Value)
		return nil

	case yaml.MappingNode:
		var out PropertyExpressions
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if val.Kind != yaml.ScalarNode {
				return fmt.Errorf("property %q: expected scalar value at line %d", key.Value, val.Line)
			}
			out = out.Add(key.Value, val.Value)
		}
		*ps = out
		return nil

	case yaml.SequenceNode:
		var items []PropertyExpression
		if err := node.Decode(&items); err != nil {
			return err
		}
		for _, item := range items {
			if item.Name == "" {
				return fmt.Errorf("property expression at line %d has no name", node.Line)
			}
		}
		*ps = items
		return nil
	}

	return fmt.Errorf("unsupported property expression at line %d", node.Line)
}
