// Package fake provides an in-memory accessibility tree for tests.
//
// Trees are described with model.Element values. An empty Role, Subrole or
// Description is reported as an absent attribute; a nil Children or Actions
// slice is reported as absent, a non-nil empty one as present but empty.
package fake

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/model"
	"github.com/mj1618/nc-clear/internal/platform"
)

// App is the root of one fake application. A nil Windows slice means the
// AXWindows attribute is absent.
type App struct {
	Windows []model.Element
}

// Accessibility implements platform.Accessibility and
// platform.ProcessDirectory over in-memory trees.
type Accessibility struct {
	// Processes maps process names to pids for FindByExactName.
	Processes map[string]int32

	// ProcessErr is returned by FindByExactName when set.
	ProcessErr error

	// CreateErr is returned by CreateApplication when set.
	CreateErr error

	// Reject lists element descriptions whose actions fail to perform.
	Reject map[string]bool

	// ActionDelay makes PerformAction block, so overlapping calls are observable.
	ActionDelay time.Duration

	apps map[int32]*App

	live     atomic.Int64
	misuse   atomic.Int64
	mu       sync.Mutex
	acted    []string
	inFlight atomic.Int64
	peak     atomic.Int64
}

// New returns an empty fake.
func New() *Accessibility {
	return &Accessibility{
		Processes: map[string]int32{},
		Reject:    map[string]bool{},
		apps:      map[int32]*App{},
	}
}

// AddApp registers a process name and its windows.
func (a *Accessibility) AddApp(name string, pid int32, app *App) {
	a.Processes[name] = pid
	a.apps[pid] = app
}

// Provider bundles the fake as a platform.Provider.
func (a *Accessibility) Provider() *platform.Provider {
	return &platform.Provider{Accessibility: a, Processes: a}
}

// Live returns the number of owned handles and lists not yet released.
func (a *Accessibility) Live() int64 { return a.live.Load() }

// Misuse returns the number of calls made through already released handles.
func (a *Accessibility) Misuse() int64 { return a.misuse.Load() }

// PeakConcurrency returns the highest number of overlapping PerformAction calls.
func (a *Accessibility) PeakConcurrency() int64 { return a.peak.Load() }

// Performed returns the descriptions of elements acted on, in call order.
func (a *Accessibility) Performed() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.acted...)
}

// FindByExactName implements platform.ProcessDirectory.
func (a *Accessibility) FindByExactName(_ context.Context, name string) (int32, bool, error) {
	if a.ProcessErr != nil {
		return 0, false, a.ProcessErr
	}
	pid, ok := a.Processes[name]
	return pid, ok, nil
}

// CreateApplication implements platform.Accessibility.
func (a *Accessibility) CreateApplication(pid int32) (platform.Element, error) {
	if a.CreateErr != nil {
		return nil, a.CreateErr
	}
	app, ok := a.apps[pid]
	if !ok {
		app = &App{}
	}
	a.live.Add(1)
	return &handle{ax: a, app: app, owned: true}, nil
}

// StringAttribute implements platform.Accessibility.
func (a *Accessibility) StringAttribute(el platform.Element, name string) (string, bool) {
	h := a.resolve(el)
	if h == nil || h.node == nil {
		return "", false
	}
	var v string
	switch name {
	case model.AttrRole:
		v = h.node.Role
	case model.AttrSubrole:
		v = h.node.Subrole
	case model.AttrDescription:
		v = h.node.Description
	}
	return v, v != ""
}

// ElementsAttribute implements platform.Accessibility.
func (a *Accessibility) ElementsAttribute(el platform.Element, name string) (platform.ElementList, bool) {
	h := a.resolve(el)
	if h == nil {
		return nil, false
	}
	var nodes []model.Element
	switch {
	case name == model.AttrWindows && h.app != nil:
		nodes = h.app.Windows
	case name == model.AttrChildren && h.node != nil:
		nodes = h.node.Children
	}
	if nodes == nil {
		return nil, false
	}

	items := make([]platform.Element, len(nodes))
	for i := range nodes {
		items[i] = &handle{ax: a, node: &nodes[i]}
	}
	a.live.Add(1)
	var once sync.Once
	return platform.ListOf(items, func() {
		once.Do(func() {
			a.live.Add(-1)
			for _, it := range items {
				it.(*handle).released.Store(true)
			}
		})
	}), true
}

// ActionNames implements platform.Accessibility.
func (a *Accessibility) ActionNames(el platform.Element) ([]string, bool) {
	h := a.resolve(el)
	if h == nil || h.node == nil || h.node.Actions == nil {
		return nil, false
	}
	return append([]string{}, h.node.Actions...), true
}

// PerformAction implements platform.Accessibility.
func (a *Accessibility) PerformAction(el platform.Element, action string) bool {
	h := a.resolve(el)
	if h == nil || h.node == nil {
		return false
	}

	n := a.inFlight.Add(1)
	defer a.inFlight.Add(-1)
	for {
		p := a.peak.Load()
		if n <= p || a.peak.CompareAndSwap(p, n) {
			break
		}
	}

	a.mu.Lock()
	a.acted = append(a.acted, h.node.Description)
	a.mu.Unlock()
	if a.ActionDelay > 0 {
		time.Sleep(a.ActionDelay)
	}

	if a.Reject[h.node.Description] {
		return false
	}
	for _, have := range h.node.Actions {
		if have == action {
			return true
		}
	}
	return false
}

func (a *Accessibility) resolve(el platform.Element) *handle {
	h, ok := el.(*handle)
	if !ok || h.ax != a {
		return nil
	}
	if h.released.Load() {
		a.misuse.Add(1)
		return nil
	}
	return h
}

type handle struct {
	ax       *Accessibility
	app      *App
	node     *model.Element
	owned    bool
	released atomic.Bool
}

func (h *handle) Retain() platform.Element {
	if h.released.Load() {
		h.ax.misuse.Add(1)
	}
	h.ax.live.Add(1)
	return &handle{ax: h.ax, app: h.app, node: h.node, owned: true}
}

func (h *handle) Release() {
	if !h.owned {
		return
	}
	if h.released.CompareAndSwap(false, true) {
		h.ax.live.Add(-1)
	}
}

// ErrCreate is a convenience error for CreateErr.
var ErrCreate = errors.New("AXUIElementCreateApplication returned NULL")
