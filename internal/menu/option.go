package menu

// Factory constructs a fresh menu instance.
type Factory func() Menu

// Option is a tagged union over the three things a token can do: run
// an action, open a freshly constructed menu, or open a shared
// pre-built menu. The zero Option means no mapping.
type Option struct {
	action  func() error
	factory Factory
	inst    Menu
}

// Call wraps a zero-argument action. A returned error is reported to
// the user and the menu redisplays.
func Call(fn func() error) Option { return Option{action: fn} }

// Submenu wraps a factory for a menu that needs fresh construction on
// every visit.
func Submenu(f Factory) Option { return Option{factory: f} }

// Instance wraps a pre-built menu that keeps state across visits.
func Instance(m Menu) Option { return Option{inst: m} }

// IsZero reports whether the option is absent.
func (o Option) IsZero() bool {
	return o.action == nil && o.factory == nil && o.inst == nil
}
