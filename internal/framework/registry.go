package framework

import (
	"errors"
	"fmt"
)

// ErrUnknownFramework reports a lookup with an unregistered key.
var ErrUnknownFramework = errors.New("framework not found")

// Registry maps short keys to framework calculators. It is constructed once
// at startup and handed to the front-ends; lookups return a fresh stateful
// wrapper so each request gets its own input/result pair.
type Registry struct {
	keys        []string
	calculators map[string]Calculator
}

// NewRegistry builds the fixed registry of the six supported frameworks.
func NewRegistry() *Registry {
	r := &Registry{calculators: make(map[string]Calculator)}
	r.register("7s", SevenS{})
	r.register("vpc", VPC{})
	r.register("strategic", StrategicInflection{})
	r.register("game", GameTheory{})
	r.register("risk", RiskReward{})
	r.register("cynefin", Cynefin{})
	return r
}

func (r *Registry) register(key string, calc Calculator) {
	r.keys = append(r.keys, key)
	r.calculators[key] = calc
}

// Lookup returns a fresh Framework for the key.
func (r *Registry) Lookup(key string) (*Framework, error) {
	calc, ok := r.calculators[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, key)
	}
	return New(calc), nil
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}
