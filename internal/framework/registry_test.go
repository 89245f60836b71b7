package framework

import (
	"errors"
	"testing"
)

func TestRegistryKeys(t *testing.T) {
	reg := NewRegistry()
	expected := []string{"7s", "vpc", "strategic", "game", "risk", "cynefin"}
	keys := reg.Keys()
	if len(keys) != len(expected) {
		t.Fatalf("expected keys %v got %v", expected, keys)
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Fatalf("key %d: expected %s got %s", i, key, keys[i])
		}
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Lookup("swot"); !errors.Is(err, ErrUnknownFramework) {
		t.Fatalf("expected ErrUnknownFramework got %v", err)
	}
}

func TestRegistryLookupReturnsFreshInstances(t *testing.T) {
	reg := NewRegistry()

	first, err := reg.Lookup("cynefin")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if err := first.SetInputs(cynefinInputs(5, 5, 5, 5, 5)); err != nil {
		t.Fatalf("set inputs: %v", err)
	}

	second, err := reg.Lookup("cynefin")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := second.Execute(); !errors.Is(err, ErrNoInputs) {
		t.Fatalf("expected fresh instance without inputs, execute returned %v", err)
	}
}
