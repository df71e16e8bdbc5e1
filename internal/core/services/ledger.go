package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/inventory_management_app/internal/middleware"
	"github.com/SscSPs/inventory_management_app/internal/utils/idgen"
)

// subscriberBuffer is how many activities a subscriber may fall behind before events are dropped.
const subscriberBuffer = 16

// ledger is the state shared by every service of one container.
// Mutations hold mu for their whole validate-then-mutate sequence; queries hold it for reading.
type ledger struct {
	mu    sync.RWMutex
	repos portsrepo.RepositoryProvider
	ids   *idgen.Generator
	now   func() time.Time

	subsMu      sync.Mutex
	subscribers map[int]chan domain.Activity
	nextSubID   int
}

// ServiceOption is a functional option for configuring the ledger behind a service container
type ServiceOption func(*ledger)

// WithClock sets the clock used for timestamps, report dates and order numbers.
func WithClock(now func() time.Time) ServiceOption {
	return func(l *ledger) {
		l.now = now
	}
}

// WithIDGenerator replaces the identifier generator.
func WithIDGenerator(ids *idgen.Generator) ServiceOption {
	return func(l *ledger) {
		l.ids = ids
	}
}

func newLedger(repos portsrepo.RepositoryProvider, options ...ServiceOption) *ledger {
	l := &ledger{
		repos:       repos,
		now:         time.Now,
		subscribers: make(map[int]chan domain.Activity),
	}
	for _, option := range options {
		option(l)
	}
	if l.ids == nil {
		l.ids = idgen.New(idgen.WithClock(l.now))
	}
	return l
}

// record appends an activity to the feed and fans it out to subscribers.
// Callers hold the write lock, so activities are recorded in mutation order.
func (l *ledger) record(ctx context.Context, activityType domain.ActivityType, relatedID string, format string, args ...any) {
	activity := domain.Activity{
		ActivityID:  l.ids.Next(idgen.Activity),
		Type:        activityType,
		Description: fmt.Sprintf(format, args...),
		Timestamp:   l.now(),
	}
	if relatedID != "" {
		activity.RelatedID = &relatedID
	}

	if err := l.repos.ActivityRepo.AppendActivity(ctx, activity); err != nil {
		// The mutation has already been applied and stays.
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record activity", slog.String("error", err.Error()), slog.String("activity_id", activity.ActivityID))
		return
	}
	l.publish(activity)
}

func (l *ledger) publish(activity domain.Activity) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	for _, ch := range l.subscribers {
		select {
		case ch <- activity:
		default:
		}
	}
}

func (l *ledger) subscribe(ctx context.Context) <-chan domain.Activity {
	ch := make(chan domain.Activity, subscriberBuffer)

	l.subsMu.Lock()
	id := l.nextSubID
	l.nextSubID++
	l.subscribers[id] = ch
	l.subsMu.Unlock()

	go func() {
		<-ctx.Done()
		l.subsMu.Lock()
		delete(l.subscribers, id)
		close(ch)
		l.subsMu.Unlock()
	}()
	return ch
}

// updateProducts writes every product. On the first failure the products already
// written are restored from originals, which must be index-aligned with updated.
func (l *ledger) updateProducts(ctx context.Context, updated, originals []domain.Product) error {
	for i := range updated {
		if err := l.repos.ProductRepo.UpdateProduct(ctx, updated[i]); err != nil {
			l.restoreProducts(ctx, originals[:i])
			return err
		}
	}
	return nil
}

// restoreProducts writes back product snapshots after a failed multi-step mutation.
func (l *ledger) restoreProducts(ctx context.Context, originals []domain.Product) {
	for i := len(originals) - 1; i >= 0; i-- {
		if err := l.repos.ProductRepo.UpdateProduct(ctx, originals[i]); err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to restore product after aborted write",
				slog.String("product_id", originals[i].ProductID), slog.String("error", err.Error()))
		}
	}
}

// matchesKeyword reports whether any field contains keyword, ignoring case.
// An empty keyword matches everything.
func matchesKeyword(keyword string, fields ...string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

func inRange(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}
