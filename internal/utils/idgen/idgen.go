// Package idgen produces the ledger's human-readable identifiers.
package idgen

import (
	"fmt"
	"sync"
	"time"
)

// Kind selects the identifier format and counter.
type Kind string

const (
	Product       Kind = "product"
	Customer      Kind = "customer"
	Supplier      Kind = "supplier"
	PurchaseOrder Kind = "purchase"
	SalesOrder    Kind = "sales"
	Adjustment    Kind = "adjustment"
	Activity      Kind = "activity"
)

// Generator hands out identifiers from one counter per Kind.
// Counters start at 1 and never go back, so deleted ids are never reused.
type Generator struct {
	mu       sync.Mutex
	counters map[Kind]int
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for year-stamped order numbers.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator with all counters at 1.
func New(options ...Option) *Generator {
	g := &Generator{
		counters: make(map[Kind]int),
		now:      time.Now,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Next returns the next identifier of the given kind, e.g. P0001 or PO2026001.
func (g *Generator) Next(kind Kind) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counters[kind]++
	seq := g.counters[kind]

	switch kind {
	case Product:
		return fmt.Sprintf("P%04d", seq)
	case Customer:
		return fmt.Sprintf("C%04d", seq)
	case Supplier:
		return fmt.Sprintf("S%04d", seq)
	case PurchaseOrder:
		return fmt.Sprintf("PO%d%03d", g.now().Year(), seq)
	case SalesOrder:
		return fmt.Sprintf("SO%d%03d", g.now().Year(), seq)
	case Adjustment:
		return fmt.Sprintf("ADJ%04d", seq)
	case Activity:
		return fmt.Sprintf("ACT%04d", seq)
	default:
		return fmt.Sprintf("%s-%d", kind, seq)
	}
}
