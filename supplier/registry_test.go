package supplier

import (
	"context"
	"reflect"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	s := &testSupplier{name: "s1"}
	reg.Register("s1", s)

	got, ok := reg.Get("s1")
	if !ok {
		t.Fatal("expected Get to find s1")
	}
	if got.Name() != "s1" {
		t.Errorf("expected name 's1', got %q", got.Name())
	}
}

func TestRegistryGetMiss(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Get("missing"); ok {
		t.Error("expected Get miss for unregistered name")
	}
}

func TestRegistryReplaceSemantics(t *testing.T) {
	reg := NewRegistry()
	first := &testSupplier{name: "first"}
	second := &testSupplier{name: "second"}

	reg.Register("slot", first)
	reg.Register("slot", second)

	if reg.Len() != 1 {
		t.Fatalf("expected 1 entry after replacement, got %d", reg.Len())
	}

	got, ok := reg.Get("slot")
	if !ok {
		t.Fatal("expected Get to find the slot")
	}
	if got.Name() != "second" {
		t.Errorf("expected replacement to win, got %q", got.Name())
	}
}

func TestRegistryHandleSurvivesReplacement(t *testing.T) {
	reg := NewRegistry()
	first := &testSupplier{name: "first"}
	reg.Register("slot", first)

	handle, _ := reg.Get("slot")
	reg.Register("slot", &testSupplier{name: "second"})

	// A handle copied out earlier keeps pointing at the original supplier.
	resp, err := handle.Query(context.Background(), Request{Operation: Search})
	if err != nil {
		t.Fatalf("query via old handle failed: %v", err)
	}
	if resp.Data.(map[string]any)["supplier"] != "first" {
		t.Error("expected the old handle to reach the original supplier")
	}
}

func TestRegistryAllNamesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register("charlie", &testSupplier{name: "charlie"})
	reg.Register("alpha", &testSupplier{name: "alpha"})
	reg.Register("bravo", &testSupplier{name: "bravo"})

	names := reg.AllNames()
	want := []string{"alpha", "bravo", "charlie"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestRegistryRegisterAll(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterAll([]Registration{
		{Name: "s1", Supplier: &testSupplier{name: "s1"}},
		{Name: "s2", Supplier: &testSupplier{name: "s2"}},
		{Name: "s1", Supplier: &testSupplier{name: "s1-replacement"}},
	})

	if reg.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", reg.Len())
	}
	got, _ := reg.Get("s1")
	if got.Name() != "s1-replacement" {
		t.Errorf("expected last registration to win, got %q", got.Name())
	}
}
