package generator

import (
	"testing"

	"github.com/verte-zerg/parley/internal/model"
)

func TestPickEmpty(t *testing.T) {
	g := NewWithSeed(1)
	if _, ok := g.Pick(nil); ok {
		t.Fatalf("expected no pick from empty list")
	}
	if _, ok := g.PickWeighted(nil, nil, 1); ok {
		t.Fatalf("expected no weighted pick from empty list")
	}
}

func TestPickReturnsMember(t *testing.T) {
	exercises := []model.Exercise{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	g := NewWithSeed(7)
	for i := 0; i < 50; i++ {
		ex, ok := g.Pick(exercises)
		if !ok {
			t.Fatalf("expected pick")
		}
		if ex.ID != "a" && ex.ID != "b" && ex.ID != "c" {
			t.Fatalf("unexpected pick %q", ex.ID)
		}
	}
}

func TestPickWeightedFavoursUnpractised(t *testing.T) {
	exercises := []model.Exercise{{ID: "done"}, {ID: "fresh"}}
	attempts := map[string]int{"done": 99}
	g := NewWithSeed(42)
	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		ex, _ := g.PickWeighted(exercises, attempts, 10)
		counts[ex.ID]++
	}
	if counts["fresh"] <= counts["done"]*3 {
		t.Fatalf("expected fresh exercise to dominate, got %v", counts)
	}
}
