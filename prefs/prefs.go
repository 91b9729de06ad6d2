// Package prefs is a small key/value settings store. Reads and writes
// never fail; a Backend loads and flushes the values as a whole.
package prefs

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Prefs holds string settings. It is safe for concurrent use.
// A Prefs made by Scope is a view onto its parent's values.
type Prefs struct {
	shared *values
	prefix string
}

type values struct {
	mu sync.RWMutex
	m  map[string]string
}

// New constructs an empty Prefs
func New() *Prefs {
	return &Prefs{shared: &values{m: map[string]string{}}}
}

// Scope returns a view of p whose keys are stored under prefix.
// Writes through the view are flushed with p.
func (p *Prefs) Scope(prefix string) *Prefs {
	return &Prefs{shared: p.shared, prefix: p.prefix + prefix}
}

// String returns the value for key, or def if it is not set
func (p *Prefs) String(key, def string) string {
	p.shared.mu.RLock()
	defer p.shared.mu.RUnlock()

	v, ok := p.shared.m[p.prefix+key]
	if !ok {
		return def
	}
	return v
}

// Has reports whether key is set
func (p *Prefs) Has(key string) bool {
	p.shared.mu.RLock()
	defer p.shared.mu.RUnlock()

	_, ok := p.shared.m[p.prefix+key]
	return ok
}

func (p *Prefs) PutString(key, value string) {
	p.shared.mu.Lock()
	defer p.shared.mu.Unlock()
	p.shared.m[p.prefix+key] = value
}

// Int returns the value for key, or def if it is not set or not a number
func (p *Prefs) Int(key string, def int) int {
	v, err := strconv.Atoi(p.String(key, ""))
	if err != nil {
		return def
	}
	return v
}

func (p *Prefs) PutInt(key string, value int) {
	p.PutString(key, strconv.Itoa(value))
}

// Delete removes every setting under the view's prefix
func (p *Prefs) Delete() {
	p.shared.mu.Lock()
	defer p.shared.mu.Unlock()

	for k := range p.shared.m {
		if strings.HasPrefix(k, p.prefix) {
			delete(p.shared.m, k)
		}
	}
}

// Values returns a copy of every setting in the view, keyed without its prefix
func (p *Prefs) Values() map[string]string {
	p.shared.mu.RLock()
	defer p.shared.mu.RUnlock()

	out := map[string]string{}
	for k, v := range p.shared.m {
		if strings.HasPrefix(k, p.prefix) {
			out[strings.TrimPrefix(k, p.prefix)] = v
		}
	}
	return out
}

func (p *Prefs) root() *Prefs {
	return &Prefs{shared: p.shared}
}

// Backend persists settings across restarts
type Backend interface {
	Load(ctx context.Context) (map[string]string, error)
	Store(ctx context.Context, values map[string]string) error
}

// Open constructs Prefs holding the values stored in b
func Open(ctx context.Context, b Backend) (*Prefs, error) {
	values, err := b.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	p := New()
	for k, v := range values {
		p.shared.m[k] = v
	}
	return p, nil
}

// Flush writes every setting to b, including those written through views
func (p *Prefs) Flush(ctx context.Context, b Backend) error {
	if err := b.Store(ctx, p.root().Values()); err != nil {
		return fmt.Errorf("storing preferences: %w", err)
	}
	return nil
}
