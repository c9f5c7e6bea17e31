// Package lifecycle turns backend key events into one lifecycle.Event per
// document write.
//
// An atomic write shows up on the watcher as a burst (CREATE of the target
// on rename, often followed by MODIFY). The source collects events per key
// until the key has been quiet for a short window and then emits one merged
// event.
package lifecycle

import (
	"context"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notekeeper/pkg/core"
)

// DefaultQuiet is how long a key must stay unchanged before its event is emitted.
const DefaultQuiet = 50 * time.Millisecond

// Option configures a write source.
type Option func(*writeSource)

// WithQuiet sets the coalescing window.
func WithQuiet(d time.Duration) Option {
	return func(s *writeSource) {
		if d > 0 {
			s.quiet = d
		}
	}
}

type writeSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	quiet  time.Duration

	pending map[string]core.Event
	order   []string
}

// NewSource creates a lifecycle.Source emitting one event per settled key write.
func NewSource(events <-chan core.Event, opts ...Option) lifecycle.Source {
	s := &writeSource{
		events:  events,
		out:     make(chan lifecycle.Event),
		quiet:   DefaultQuiet,
		pending: make(map[string]core.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *writeSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start runs the coalescing loop. Pending events are flushed when the input
// closes; cancelling ctx drops them. Events is closed in both cases.
func (s *writeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)

		var timer *time.Timer
		var fire <-chan time.Time
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					s.flush(ctx)
					return nil
				}
				s.add(e)
				if timer == nil {
					timer = time.NewTimer(s.quiet)
				} else {
					timer.Reset(s.quiet)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				if !s.flush(ctx) {
					return nil
				}
			}
		}
	})
	return nil
}

func (s *writeSource) add(e core.Event) {
	prev, ok := s.pending[e.Key]
	if !ok {
		s.order = append(s.order, e.Key)
		s.pending[e.Key] = e
		return
	}
	s.pending[e.Key] = merge(prev, e)
}

// flush emits pending events in first-seen order. It reports false when ctx
// ended before everything was sent.
func (s *writeSource) flush(ctx context.Context) bool {
	defer func() {
		s.order = s.order[:0]
		clear(s.pending)
	}()
	for _, key := range s.order {
		select {
		case s.out <- s.pending[key]:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// merge folds next into prev for the same key.
func merge(prev, next core.Event) core.Event {
	out := next
	switch {
	case next.Type == core.EventDelete:
	case prev.Type == core.EventCreate:
		// Created then written: still a creation.
		out.Type = core.EventCreate
	case prev.Type == core.EventDelete:
		// Removed then recreated: the document was replaced.
		out.Type = core.EventModify
	}
	return out
}
