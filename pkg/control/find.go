package control

import (
	"sort"

	"github.com/devicelab-dev/uitestext/pkg/core"
)

// FindBy returns a handle for a control of type typ inside container that
// satisfies every property condition. The conditions are copied. The host
// is not contacted until the handle is used.
func FindBy(container *Control, typ core.ControlType, props core.PropertyExpressions) (*Control, error) {
	if container == nil {
		return nil, core.InvalidArgument("container")
	}

	return &Control{
		host:      container.host,
		container: container,
		search:    core.Search{Type: typ, Properties: props.Clone()},
	}, nil
}

// FindByID returns a handle for the control of type typ inside container
// whose automation id equals id.
func FindByID(container *Control, typ core.ControlType, id string) (*Control, error) {
	props := core.PropertyExpressions{}.Add(core.PropAutomationID, id)
	return FindBy(container, typ, props)
}

// Definition declares a named control: its type and automation id.
type Definition struct {
	Name         string
	Type         core.ControlType
	AutomationID string
}

// Registry maps declared control names to their definitions.
// It is filled at construction time and not safe for concurrent Register calls.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry creates a registry holding defs.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		r.Register(d)
	}
	return r
}

// Register adds or replaces a definition.
func (r *Registry) Register(def Definition) {
	r.defs[def.Name] = def
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Find returns a handle for the declared control name inside container.
// Fails with core.ErrMissingIdentifier, without contacting the host, when
// name is not registered or declares no automation id.
func (r *Registry) Find(container *Control, name string) (*Control, error) {
	def, ok := r.defs[name]
	if !ok || def.AutomationID == "" {
		return nil, core.ErrMissingIdentifier.
			WithMessage("no automation id declared for control " + name).
			WithDetails(map[string]interface{}{"control": name})
	}

	c, err := FindByID(container, def.Type, def.AutomationID)
	if err != nil {
		return nil, err
	}
	c.kind = def.Name
	return c, nil
}
