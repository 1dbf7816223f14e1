package core

import (
	"testing"

	"randviz/internal/chart"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestStreamsIndependent(t *testing.T) {
	a := NewStream(7, 1)
	b := NewStream(7, 2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("distinct streams produced identical sequences")
	}
}

func TestStepDir(t *testing.T) {
	r := NewRNG(11).Source()
	sawUp, sawDown := false, false
	for i := 0; i < 200; i++ {
		switch StepDir(r) {
		case 1:
			sawUp = true
		case -1:
			sawDown = true
		default:
			t.Fatal("StepDir returned a value outside ±1")
		}
	}
	if !sawUp || !sawDown {
		t.Fatal("StepDir never produced both directions")
	}
}

type fakeSim struct{}

func (fakeSim) Name() string         { return "fake" }
func (fakeSim) Size() Size           { return Size{W: 1, H: 1} }
func (fakeSim) Reset(int64)          {}
func (fakeSim) Step()                {}
func (fakeSim) Done() bool           { return true }
func (fakeSim) Status() string       { return "" }
func (fakeSim) Render(*chart.Canvas) {}

func TestRegistry(t *testing.T) {
	Register("core-test-fake", func(map[string]string) Sim { return fakeSim{} })
	if _, ok := Sims()["core-test-fake"]; !ok {
		t.Fatal("registered factory not found")
	}
	before := len(Sims())
	Register("", func(map[string]string) Sim { return fakeSim{} })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations were accepted")
	}
}

func TestFixedStepFirstTick(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first tick should be due immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second tick due without any time passing")
	}
}
