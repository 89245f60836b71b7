package framework

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestFrameworkSetInputsRejectsInvalid(t *testing.T) {
	fw := New(VPC{})
	err := fw.SetInputs(Inputs{"cost": -1.0, "price": 2.0, "value": 3.0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
	if _, err := fw.Execute(); !errors.Is(err, ErrNoInputs) {
		t.Fatalf("expected ErrNoInputs after rejected inputs got %v", err)
	}
}

func TestFrameworkExecuteWithoutInputs(t *testing.T) {
	fw := New(Cynefin{})
	if _, err := fw.Execute(); !errors.Is(err, ErrNoInputs) {
		t.Fatalf("expected ErrNoInputs got %v", err)
	}
	if viz := fw.VisualizationData(); len(viz) != 0 {
		t.Fatalf("expected empty visualization data got %v", viz)
	}
}

func TestFrameworkExecuteIsIdempotent(t *testing.T) {
	fw := New(SevenS{})
	if err := fw.SetInputs(sevenSInputs(map[string]float64{"strategy": 4})); err != nil {
		t.Fatalf("set inputs: %v", err)
	}

	first, err := fw.Execute()
	if err != nil {
		t.Fatalf("first execute: %v", err)
	}
	second, err := fw.Execute()
	if err != nil {
		t.Fatalf("second execute: %v", err)
	}

	if !reflect.DeepEqual(first.Scores, second.Scores) {
		t.Fatalf("scores differ: %v vs %v", first.Scores, second.Scores)
	}
	if *first.OverallScore != *second.OverallScore {
		t.Fatalf("overall scores differ: %f vs %f", *first.OverallScore, *second.OverallScore)
	}
	if !reflect.DeepEqual(first.Recommendations, second.Recommendations) {
		t.Fatalf("recommendations differ: %v vs %v", first.Recommendations, second.Recommendations)
	}
}

func TestFrameworkSnapshot(t *testing.T) {
	fw := New(VPC{})
	snapshot := fw.Snapshot()
	if snapshot.Name != "VPC Framework" {
		t.Fatalf("unexpected name %q", snapshot.Name)
	}
	if snapshot.Result != nil {
		t.Fatalf("expected nil result before execute got %v", snapshot.Result)
	}

	if err := fw.SetInputs(Inputs{"cost": 50.0, "price": 100.0, "value": 150.0}); err != nil {
		t.Fatalf("set inputs: %v", err)
	}
	if _, err := fw.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	snapshot = fw.Snapshot()
	if snapshot.Result == nil {
		t.Fatal("expected result after execute")
	}
	if snapshot.Inputs["price"] != 100.0 {
		t.Fatalf("expected stored inputs got %v", snapshot.Inputs)
	}

	exported, err := fw.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(exported, `"VPC Framework"`) {
		t.Fatalf("export missing framework name: %s", exported)
	}
}

func TestInputPrompts(t *testing.T) {
	fw := New(Cynefin{})
	prompts := fw.InputPrompts()
	if len(prompts) != len(fw.RequiredInputs()) {
		t.Fatalf("expected %d prompts got %d", len(fw.RequiredInputs()), len(prompts))
	}
	if prompts[0] != "clarity_level: Clarity of the problem definition (1-10 scale)" {
		t.Fatalf("unexpected prompt %q", prompts[0])
	}
}
