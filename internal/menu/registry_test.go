package menu

import "testing"

func TestRegistryNew(t *testing.T) {
	r := NewRegistry()
	r.Register("main", func() Menu { return &plainMenu{name: "main", footer: FooterQuit} })

	m, err := r.New("main")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.Name() != "main" {
		t.Errorf("Name() = %q, want %q", m.Name(), "main")
	}
}

func TestRegistryNewUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New("nope"); err == nil {
		t.Error("New() should fail for an unregistered name")
	}
}

func TestRegistryRoot(t *testing.T) {
	r := NewRegistry()
	r.Register("main", func() Menu { return &plainMenu{name: "main", footer: FooterQuit} })
	if err := r.SetRoot("main"); err != nil {
		t.Fatalf("SetRoot() error = %v", err)
	}

	m, err := r.NewRoot()
	if err != nil {
		t.Fatalf("NewRoot() error = %v", err)
	}
	if m.Name() != "main" {
		t.Errorf("root Name() = %q, want %q", m.Name(), "main")
	}

	// Every call builds a fresh instance.
	m2, err := r.NewRoot()
	if err != nil {
		t.Fatal(err)
	}
	if m == m2 {
		t.Error("NewRoot() returned the same instance twice")
	}
}

func TestRegistrySetRootUnregistered(t *testing.T) {
	r := NewRegistry()
	if err := r.SetRoot("main"); err == nil {
		t.Error("SetRoot() should fail for an unregistered name")
	}
}

func TestRegistryNewRootUnset(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewRoot(); err == nil {
		t.Error("NewRoot() should fail when no root is set")
	}
}
