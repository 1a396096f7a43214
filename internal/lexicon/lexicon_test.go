package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/parley/internal/model"
)

func TestNewSeedsDefaults(t *testing.T) {
	l := New()
	for _, cat := range model.Categories {
		if got := len(l.Words(cat)); got != 10 {
			t.Fatalf("expected 10 %s words, got %d", cat, got)
		}
	}
}

func TestNewDoesNotShareDefaults(t *testing.T) {
	a := New()
	if err := a.Add(model.Positive, "extra"); err != nil {
		t.Fatalf("add: %v", err)
	}
	b := New()
	if got := len(b.Words(model.Positive)); got != 10 {
		t.Fatalf("expected fresh lexicon to keep 10 words, got %d", got)
	}
}

func TestAddLowercasesAndDedupes(t *testing.T) {
	l := New(WithWords(model.Power, nil))
	if err := l.Add(model.Power, "Agora", "agora", " ", "JÁ"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if diff := cmp.Diff([]string{"agora", "já"}, l.Words(model.Power)); diff != "" {
		t.Fatalf("unexpected words (-want +got):\n%s", diff)
	}
}

func TestAddUnknownCategory(t *testing.T) {
	l := New()
	if err := l.Add(model.Category("neutral"), "x"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestReplace(t *testing.T) {
	l := New()
	if err := l.Replace(model.Negative, []string{"Prejuízo"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if diff := cmp.Diff([]string{"prejuízo"}, l.Words(model.Negative)); diff != "" {
		t.Fatalf("unexpected words (-want +got):\n%s", diff)
	}
}

func TestWithExtraWords(t *testing.T) {
	l := New(WithExtraWords(model.Collaborative, []string{"nós", "ambos"}))
	words := l.Words(model.Collaborative)
	if len(words) != 11 || words[10] != "nós" {
		t.Fatalf("expected nós appended once, got %v", words)
	}
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory(" Collaborative ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cat != model.Collaborative {
		t.Fatalf("expected collaborative, got %s", cat)
	}
	if _, err := ParseCategory("angry"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "positive.txt"), []byte("Lucro\nacordo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l := New()
	if err := l.LoadDir(dir); err != nil {
		t.Fatalf("load dir: %v", err)
	}
	words := l.Words(model.Positive)
	if len(words) != 11 || words[10] != "lucro" {
		t.Fatalf("expected lucro appended, got %v", words)
	}
	if got := len(l.Words(model.Negative)); got != 10 {
		t.Fatalf("expected negative untouched, got %d", got)
	}
}
