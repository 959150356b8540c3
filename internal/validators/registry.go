package validators

import (
	"fmt"
	"sort"

	"github.com/metalagman/protovet/internal/scripts"
)

// UnknownGateError reports a gate id with no registered validator. An
// explicit registry keeps this a typed error instead of a silent no-op.
type UnknownGateError struct {
	GateID string
}

func (e *UnknownGateError) Error() string {
	return fmt.Sprintf("unknown gate id: %s", e.GateID)
}

// Registry maps gate ids to validator modules. Populated at startup;
// read-only afterwards.
type Registry struct {
	modules map[string]*Validator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Validator)}
}

// Register adds a validator under its own name.
func (r *Registry) Register(v *Validator) error {
	if _, exists := r.modules[v.Name()]; exists {
		return fmt.Errorf("validator %s already registered", v.Name())
	}
	r.modules[v.Name()] = v
	return nil
}

// Resolve returns the validator backing a gate id.
func (r *Registry) Resolve(gateID string) (*Validator, error) {
	v, ok := r.modules[gateID]
	if !ok {
		return nil, &UnknownGateError{GateID: gateID}
	}
	return v, nil
}

// Names lists registered validator names, ascending.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default builds the registry with all ten validator modules.
func Default(reg scripts.Registry) *Registry {
	registry := NewRegistry()
	for _, v := range []*Validator{
		NewIdentity(),
		NewStructure(),
		NewScriptIntegration(reg),
		NewDeliverables(),
		NewQualityGates(),
		NewCommunication(),
		NewEvidenceCapture(),
		NewRecovery(),
		NewHandoff(),
		NewDocs(),
	} {
		if err := registry.Register(v); err != nil {
			panic(err)
		}
	}
	return registry
}
