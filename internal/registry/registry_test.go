package registry

import (
	"testing"

	"github.com/vovakirdan/snake-ultra/internal/config"
)

func TestBuiltinVariants(t *testing.T) {
	list := List()
	ids := make([]string, 0, len(list))
	for _, v := range list {
		ids = append(ids, v.ID)
	}

	expected := []string{"fair", "steady", "ultra"}
	if len(ids) != len(expected) {
		t.Fatalf("List() = %v, expected %v", ids, expected)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("List()[%d] = %q, expected %q", i, ids[i], expected[i])
		}
	}
}

func TestConfigure(t *testing.T) {
	base := config.Default()

	cfg, err := Configure("steady", base)
	if err != nil {
		t.Fatalf("Configure(steady) failed: %v", err)
	}
	if cfg.Speed.DecayMs != 2 || cfg.Speed.CapMs != 80 {
		t.Errorf("steady speed = %+v", cfg.Speed)
	}
	if base.Speed.DecayMs != 3 {
		t.Error("Configure must not modify base")
	}

	cfg, err = Configure("fair", base)
	if err != nil {
		t.Fatalf("Configure(fair) failed: %v", err)
	}
	if !cfg.Food.AvoidSnake {
		t.Error("fair should avoid the snake")
	}

	cfg, err = Configure(DefaultVariant, base)
	if err != nil || cfg != base {
		t.Errorf("Configure(ultra) = %+v, %v", cfg, err)
	}
}

func TestConfigureUnknown(t *testing.T) {
	if _, err := Configure("nope", config.Default()); err == nil {
		t.Error("expected error for unknown variant")
	}
	if Exists("nope") {
		t.Error("Exists(nope) should be false")
	}
}

func TestConfigureRejectsInvalidResult(t *testing.T) {
	base := config.Default()
	base.Speed.BaseMs = 60 // steady's cap of 80 would exceed it

	if _, err := Configure("steady", base); err == nil {
		t.Error("expected validation error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Variant{ID: DefaultVariant})
}
