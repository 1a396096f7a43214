// Package patterns detects negotiation tactics from keyword frequency.
package patterns

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/verte-zerg/parley/internal/textnorm"
)

// UnknownDescription is returned by DescriptionOrDefault for ids outside the catalog.
const UnknownDescription = "Padrão desconhecido"

var (
	// ErrEmptyPatternID is returned when adding a pattern without an id.
	ErrEmptyPatternID = errors.New("pattern id is empty")
	// ErrEmptyKeyword is returned when a pattern lists a blank keyword.
	ErrEmptyKeyword = errors.New("pattern keyword is empty")
)

// Pattern describes a negotiation tactic, the keywords that signal it and
// suggested counter-responses.
type Pattern struct {
	ID          string
	Description string
	Keywords    []string
	Responses   []string
}

// Catalog is an ordered set of patterns. Iteration follows insertion order.
type Catalog struct {
	mu       sync.RWMutex
	order    []string
	patterns map[string]*Pattern
}

// NewCatalog returns a catalog seeded with the ten built-in tactics, then
// applies extra patterns in order.
func NewCatalog(extra ...Pattern) (*Catalog, error) {
	c := &Catalog{patterns: make(map[string]*Pattern, len(builtinPatterns)+len(extra))}
	for _, p := range builtinPatterns {
		if err := c.AddPattern(p); err != nil {
			return nil, err
		}
	}
	for _, p := range extra {
		if err := c.AddPattern(p); err != nil {
			return nil, fmt.Errorf("failed to add pattern %q: %w", p.ID, err)
		}
	}
	return c, nil
}

// AddPattern inserts a new pattern at the end of the catalog or updates an
// existing one. On update the description is overwritten; keywords and
// responses are replaced only when the new pattern lists some.
func (c *Catalog) AddPattern(p Pattern) error {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return ErrEmptyPatternID
	}
	keywords := make([]string, 0, len(p.Keywords))
	for _, kw := range p.Keywords {
		kw = textnorm.Lower(kw)
		if strings.TrimSpace(kw) == "" {
			return ErrEmptyKeyword
		}
		keywords = append(keywords, kw)
	}
	responses := append([]string(nil), p.Responses...)

	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok := c.patterns[id]
	if !ok {
		c.order = append(c.order, id)
		c.patterns[id] = &Pattern{
			ID:          id,
			Description: p.Description,
			Keywords:    keywords,
			Responses:   responses,
		}
		return nil
	}
	existing.Description = p.Description
	if len(keywords) > 0 {
		existing.Keywords = keywords
	}
	if len(responses) > 0 {
		existing.Responses = responses
	}
	return nil
}

// Description returns the description of a pattern.
func (c *Catalog) Description(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.patterns[id]
	if !ok {
		return "", false
	}
	return p.Description, true
}

// DescriptionOrDefault returns the description of a pattern or UnknownDescription.
func (c *Catalog) DescriptionOrDefault(id string) string {
	if desc, ok := c.Description(id); ok {
		return desc
	}
	return UnknownDescription
}

// Responses returns a copy of the suggested responses of a pattern.
func (c *Catalog) Responses(id string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.patterns[id]
	if !ok {
		return nil, false
	}
	return append([]string(nil), p.Responses...), true
}

// Patterns returns copies of all patterns in catalog order.
func (c *Catalog) Patterns() []Pattern {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Pattern, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clonePattern(c.patterns[id]))
	}
	return out
}

// Len returns the number of patterns.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

func (c *Catalog) each(fn func(p *Pattern)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		fn(c.patterns[id])
	}
}

func clonePattern(p *Pattern) Pattern {
	return Pattern{
		ID:          p.ID,
		Description: p.Description,
		Keywords:    append([]string(nil), p.Keywords...),
		Responses:   append([]string(nil), p.Responses...),
	}
}
