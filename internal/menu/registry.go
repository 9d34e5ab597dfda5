package menu

import (
	"errors"
	"fmt"
)

// Registry resolves menu names to factories. The root menu registers
// itself here at startup; menus that need to open the root look it up
// by name instead of importing its constructor, which would be
// circular. Single threaded, no locking.
type Registry struct {
	factories map[string]Factory
	root      string
}

// NewRegistry creates an empty menu registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds name to a factory. A later registration under the
// same name replaces the earlier one.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// SetRoot marks a registered menu as the root of the tree.
func (r *Registry) SetRoot(name string) error {
	if _, ok := r.factories[name]; !ok {
		return fmt.Errorf("root menu %q not registered", name)
	}
	r.root = name
	return nil
}

// New instantiates the named menu.
func (r *Registry) New(name string) (Menu, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("menu %q not registered", name)
	}
	return f(), nil
}

// NewRoot instantiates the root menu.
func (r *Registry) NewRoot() (Menu, error) {
	if r.root == "" {
		return nil, errors.New("no root menu registered")
	}
	return r.New(r.root)
}
