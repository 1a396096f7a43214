package patterns

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCatalogBuiltinOrder(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	var ids []string
	for _, p := range c.Patterns() {
		ids = append(ids, p.ID)
	}
	want := []string{
		"anchoring", "nibbling", "good_cop_bad_cop", "deadline_pressure", "limited_authority",
		"emotional_appeal", "take_it_or_leave_it", "bogey", "decoy", "highball_lowball",
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("unexpected catalog order (-want +got):\n%s", diff)
	}
}

func TestAddPatternOverwritesDescriptionOnly(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if err := c.AddPattern(Pattern{ID: "bogey", Description: "custom"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	desc, ok := c.Description("bogey")
	if !ok || desc != "custom" {
		t.Fatalf("expected overwritten description, got %q (%v)", desc, ok)
	}
	responses, _ := c.Responses("bogey")
	if len(responses) != 3 {
		t.Fatalf("expected built-in responses kept, got %v", responses)
	}
	if c.Len() != 10 {
		t.Fatalf("expected catalog size 10, got %d", c.Len())
	}
}

func TestAddPatternAppendsNew(t *testing.T) {
	c, err := NewCatalog(Pattern{
		ID:          "flinch",
		Description: "Reação exagerada à oferta",
		Keywords:    []string{"Absurdo", "chocado"},
		Responses:   []string{"Mantenha a calma"},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	patterns := c.Patterns()
	last := patterns[len(patterns)-1]
	if last.ID != "flinch" {
		t.Fatalf("expected flinch appended last, got %s", last.ID)
	}
	if diff := cmp.Diff([]string{"absurdo", "chocado"}, last.Keywords); diff != "" {
		t.Fatalf("expected lowercased keywords (-want +got):\n%s", diff)
	}
}

func TestAddPatternRejectsBadInput(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if err := c.AddPattern(Pattern{ID: " "}); !errors.Is(err, ErrEmptyPatternID) {
		t.Fatalf("expected ErrEmptyPatternID, got %v", err)
	}
	if err := c.AddPattern(Pattern{ID: "x", Keywords: []string{"ok", " "}}); !errors.Is(err, ErrEmptyKeyword) {
		t.Fatalf("expected ErrEmptyKeyword, got %v", err)
	}
	if _, err := NewCatalog(Pattern{ID: ""}); err == nil {
		t.Fatalf("expected error for invalid extra pattern")
	}
}

func TestDescriptionOrDefault(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if got := c.DescriptionOrDefault("missing"); got != UnknownDescription {
		t.Fatalf("expected default description, got %q", got)
	}
}

func TestPatternsReturnsCopies(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	patterns := c.Patterns()
	patterns[0].Keywords[0] = "mutated"
	if got := c.Patterns()[0].Keywords[0]; got != "inicial" {
		t.Fatalf("expected catalog unaffected, got %q", got)
	}
}
