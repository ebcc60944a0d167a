package notify

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/logger"
	"github.com/mj1618/nc-clear/internal/model"
	"github.com/mj1618/nc-clear/internal/platform"
	"golang.org/x/sync/errgroup"
)

// Mode selects how Close schedules dismiss actions.
type Mode string

const (
	// ModeConcurrent runs one task per group.
	ModeConcurrent Mode = "concurrent"
	// ModeSequential acts on one group at a time.
	ModeSequential Mode = "sequential"
)

// ParseMode converts a flag or config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeConcurrent:
		return ModeConcurrent, nil
	case ModeSequential:
		return ModeSequential, nil
	default:
		return "", errors.Newf("unknown mode: %q (expected concurrent or sequential)", s)
	}
}

// Closer dismisses notification groups.
type Closer struct {
	ax         platform.Accessibility
	mode       Mode
	maxWorkers int
}

// CloserOption configures a Closer.
type CloserOption func(*Closer)

// WithMode sets the execution mode. The default is ModeConcurrent.
func WithMode(m Mode) CloserOption {
	return func(c *Closer) { c.mode = m }
}

// WithMaxWorkers caps the number of groups closed at once in concurrent
// mode. Zero or less means no cap.
func WithMaxWorkers(n int) CloserOption {
	return func(c *Closer) { c.maxWorkers = n }
}

// NewCloser creates a Closer.
func NewCloser(ax platform.Accessibility, opts ...CloserOption) *Closer {
	c := &Closer{ax: ax, mode: ModeConcurrent}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close performs one dismiss action on each group and returns how many
// succeeded. Groups are visited last discovered first. Groups without a
// dismiss action, and actions the OS rejects, are not counted.
func (c *Closer) Close(groups []Group) int {
	if c.mode == ModeSequential {
		return c.closeSequential(groups)
	}
	return c.closeConcurrent(groups)
}

func (c *Closer) closeSequential(groups []Group) int {
	start := time.Now()
	closed := 0
	for i := len(groups) - 1; i >= 0; i-- {
		if c.closeOne(groups[i], start) {
			closed++
		}
	}
	return closed
}

// closeConcurrent starts one task per group. Reading actions and performing
// them both block on the target app, so running groups in parallel is much
// faster than one at a time.
func (c *Closer) closeConcurrent(groups []Group) int {
	start := time.Now()
	var closed atomic.Int64

	var g errgroup.Group
	if c.maxWorkers > 0 {
		g.SetLimit(c.maxWorkers)
	}
	for i := len(groups) - 1; i >= 0; i-- {
		group := groups[i]
		g.Go(func() error {
			if c.closeOne(group, start) {
				closed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(closed.Load())
}

func (c *Closer) closeOne(group Group, start time.Time) bool {
	logger.Logger.Debugw("Closing notification", "elapsed_ms", time.Since(start).Milliseconds())

	actions, ok := c.ax.ActionNames(group)
	if !ok {
		return false
	}
	action, ok := model.FirstDismissAction(actions)
	if !ok {
		logger.Logger.Debugw("No dismiss action", "actions", actions)
		return false
	}
	if !c.ax.PerformAction(group, action) {
		logger.Logger.Debugw("Dismiss action failed", "action", action)
		return false
	}
	return true
}
