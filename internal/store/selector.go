// AngelaMos | 2026
// selector.go

package store

import (
	"context"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/mentorax-api/internal/core"
)

const (
	ModePersistent = "persistent"
	ModeMemory     = "memory"
)

// Selector reports whether the persistent store can be used right now.
// Implementations must answer from current state on every call.
type Selector interface {
	Persistent() bool
}

// FailureReporter is a Selector that can react to a failed persistent call
// before its next scheduled check. MarkDown reports whether err means the
// persistent store is gone.
type FailureReporter interface {
	MarkDown(err error) bool
}

func Mode(sel Selector) string {
	if sel != nil && sel.Persistent() {
		return ModePersistent
	}
	return ModeMemory
}

// Switch is a Selector flipped by hand. Used for demo mode and tests.
type Switch struct {
	on atomic.Bool
}

func NewSwitch(persistent bool) *Switch {
	s := &Switch{}
	s.on.Store(persistent)
	return s
}

func (s *Switch) Persistent() bool {
	return s.on.Load()
}

func (s *Switch) Set(persistent bool) {
	s.on.Store(persistent)
}

// Dual holds the persistent and in-memory implementations of one
// repository interface and hands out whichever the selector points at.
type Dual[R any] struct {
	selector   Selector
	persistent R
	memory     R
	hasPersist bool
}

// NewDual builds a Dual. persistent may be the zero value when no database
// is configured, in which case Pick always returns memory.
func NewDual[R any](selector Selector, persistent R, memory R, hasPersistent bool) *Dual[R] {
	return &Dual[R]{
		selector:   selector,
		persistent: persistent,
		memory:     memory,
		hasPersist: hasPersistent,
	}
}

func MemoryOnly[R any](memory R) *Dual[R] {
	var zero R
	return NewDual(nil, zero, memory, false)
}

func (d *Dual[R]) Pick(ctx context.Context) R {
	repo, _ := d.pick(ctx)
	return repo
}

func (d *Dual[R]) pick(ctx context.Context) (R, bool) {
	if d.hasPersist && d.selector != nil && d.selector.Persistent() {
		core.AddSpanEvent(ctx, "store.pick", attribute.String("mode", ModePersistent))
		return d.persistent, true
	}
	core.AddSpanEvent(ctx, "store.pick", attribute.String("mode", ModeMemory))
	return d.memory, false
}

// lost reports whether err from the persistent backend means the database
// went away, telling the selector so it stops handing out persistent.
func (d *Dual[R]) lost(err error) bool {
	if err == nil {
		return false
	}
	if reporter, ok := d.selector.(FailureReporter); ok {
		return reporter.MarkDown(err)
	}
	return core.IsConnectionError(err)
}

// Query runs fn against the selected backend. If the database drops during
// the call, fn runs again against memory and the caller never sees the
// connection error.
func Query[R, T any](ctx context.Context, d *Dual[R], fn func(R) (T, error)) (T, error) {
	repo, persistent := d.pick(ctx)

	out, err := fn(repo)
	if !persistent || !d.lost(err) {
		return out, err
	}

	slog.WarnContext(ctx, "persistent call failed, retrying in memory", "error", err)
	core.AddSpanEvent(ctx, "store.fallback", attribute.String("error", err.Error()))
	return fn(d.memory)
}

// Exec is Query for calls that return only an error.
func Exec[R any](ctx context.Context, d *Dual[R], fn func(R) error) error {
	_, err := Query(ctx, d, func(repo R) (struct{}, error) {
		return struct{}{}, fn(repo)
	})
	return err
}

// Memory always returns the in-memory implementation, e.g. for seeding.
func (d *Dual[R]) Memory() R {
	return d.memory
}
