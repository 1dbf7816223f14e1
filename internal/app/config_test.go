package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "randomwalk", "-seed", "7", "-tps", "15"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Sim != "randomwalk" || cfg.Seed != 7 || cfg.TPS != 15 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Scale != 1 {
		t.Fatalf("unset flag lost its default: %+v", cfg)
	}
}

func TestConfigResolveSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 0
	if !cfg.ResolveSeed() {
		t.Fatal("zero seed was not resolved")
	}
	if cfg.Seed == 0 {
		t.Fatal("resolved seed is still zero")
	}
	cfg.Seed = 7
	if cfg.ResolveSeed() {
		t.Fatal("explicit seed was replaced")
	}
	if cfg.Seed != 7 {
		t.Fatalf("explicit seed changed to %d", cfg.Seed)
	}
}

func TestConfigLoadEnv(t *testing.T) {
	t.Setenv("RANDVIZ_SIM", "randomwalk")
	t.Setenv("RANDVIZ_SEED", "99")
	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.Sim != "randomwalk" || cfg.Seed != 99 {
		t.Fatalf("env values not applied: %+v", cfg)
	}
	if cfg.TPS != 30 {
		t.Fatalf("unset env overwrote default: %+v", cfg)
	}
}
