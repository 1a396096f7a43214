// Package lexicon holds the keyword sets used for tone and style scoring.
package lexicon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/verte-zerg/parley/internal/logging"
	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/textnorm"
	"github.com/verte-zerg/parley/internal/wordlist"
)

// ErrUnknownCategory is returned for category names outside the four lexicon sets.
var ErrUnknownCategory = errors.New("unknown lexicon category")

// Lexicon stores the positive, negative, power and collaborative word sets.
// Words are lowercase and unique within a category.
type Lexicon struct {
	mu    sync.RWMutex
	words map[model.Category][]string
}

// Option configures a Lexicon at construction time.
type Option func(*Lexicon)

// WithWords replaces the built-in words of a category.
// Unknown categories are ignored.
func WithWords(cat model.Category, words []string) Option {
	return func(l *Lexicon) {
		if !validCategory(cat) {
			return
		}
		l.words[cat] = nil
		l.appendLocked(cat, words)
	}
}

// WithExtraWords appends words to a category on top of the built-ins.
func WithExtraWords(cat model.Category, words []string) Option {
	return func(l *Lexicon) {
		if !validCategory(cat) {
			return
		}
		l.appendLocked(cat, words)
	}
}

// New returns a Lexicon seeded with the built-in Portuguese word sets.
func New(opts ...Option) *Lexicon {
	l := &Lexicon{words: cloneWords(defaultWords)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ParseCategory maps a category name to a Category.
func ParseCategory(name string) (model.Category, error) {
	cat := model.Category(strings.ToLower(strings.TrimSpace(name)))
	if !validCategory(cat) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return cat, nil
}

// Add appends words to a category, skipping blanks and duplicates.
func (l *Lexicon) Add(cat model.Category, words ...string) error {
	if !validCategory(cat) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.appendLocked(cat, words)
	return nil
}

// Replace swaps the whole word set of a category.
func (l *Lexicon) Replace(cat model.Category, words []string) error {
	if !validCategory(cat) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.words[cat] = nil
	l.appendLocked(cat, words)
	return nil
}

// Words returns a copy of the words in a category.
func (l *Lexicon) Words(cat model.Category) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	src := l.words[cat]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Read calls fn with the word sets under a read lock.
// fn must not retain or modify the map.
func (l *Lexicon) Read(fn func(words map[model.Category][]string)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.words)
}

// LoadDir appends words from <dir>/<category>.txt for every category.
// Missing or empty files are skipped.
func (l *Lexicon) LoadDir(dir string) error {
	logger := logging.New("lexicon")
	for _, cat := range model.Categories {
		path := filepath.Join(dir, string(cat)+".txt")
		words, err := wordlist.LoadWords(path)
		if err != nil {
			if os.IsNotExist(err) || errors.Is(err, wordlist.ErrEmptyList) {
				logger.Debug("skipping keyword file", "path", path, "error", err)
				continue
			}
			return fmt.Errorf("failed to load %s words: %w", cat, err)
		}
		if err := l.Add(cat, words...); err != nil {
			return err
		}
		logger.Debug("loaded keyword file", "path", path, "words", len(words))
	}
	return nil
}

func (l *Lexicon) appendLocked(cat model.Category, words []string) {
	existing := l.words[cat]
	seen := make(map[string]struct{}, len(existing)+len(words))
	for _, w := range existing {
		seen[w] = struct{}{}
	}
	for _, w := range words {
		w = textnorm.Lower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		existing = append(existing, w)
	}
	l.words[cat] = existing
}

func validCategory(cat model.Category) bool {
	for _, c := range model.Categories {
		if c == cat {
			return true
		}
	}
	return false
}
