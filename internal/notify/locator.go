package notify

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/logger"
	"github.com/mj1618/nc-clear/internal/model"
	"github.com/mj1618/nc-clear/internal/platform"
)

// ProcessName is the process that owns the notification panel.
const ProcessName = "NotificationCenter"

// descentHops is the number of first-child hops between the panel window and
// the element whose children are the alerts: window > layout group > alert
// stack group. This mirrors the layout macOS ships today and is not
// validated beyond "each hop has children".
const descentHops = 2

var (
	// ErrProcessNotFound means no process named ProcessName is running.
	ErrProcessNotFound = errors.New("notification center process not found")

	// ErrElementCreationFailed means the application element could not be created.
	ErrElementCreationFailed = errors.New("failed to create accessibility element")
)

// Locator finds notification groups in the NotificationCenter panel.
type Locator struct {
	ax    platform.Accessibility
	procs platform.ProcessDirectory
}

// NewLocator creates a Locator.
func NewLocator(ax platform.Accessibility, procs platform.ProcessDirectory) *Locator {
	return &Locator{ax: ax, procs: procs}
}

// Locate returns the notification groups currently on screen, in traversal
// order. A missing panel or an unexpected panel layout yields an empty
// result, not an error. Only ErrProcessNotFound and ErrElementCreationFailed
// are returned.
func (l *Locator) Locate(ctx context.Context) ([]Group, error) {
	pid, ok, err := l.procs.FindByExactName(ctx, ProcessName)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "look up %s", ProcessName), ErrProcessNotFound)
	}
	if !ok {
		return nil, errors.WithHint(
			errors.Wrapf(ErrProcessNotFound, "no process named %q", ProcessName),
			"NotificationCenter is started by macOS at login; this tool only runs on a logged-in desktop session")
	}
	logger.Logger.Debugw("NotificationCenter PID", "pid", pid)

	root, err := l.ax.CreateApplication(pid)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "pid %d", pid), ErrElementCreationFailed)
	}
	defer root.Release()

	windows, ok := l.ax.ElementsAttribute(root, model.AttrWindows)
	if !ok {
		logger.Logger.Info("No NotificationCenter windows found")
		return nil, nil
	}
	defer windows.Release()

	logger.Logger.Debugw("Found windows", "count", len(windows.Elements()))
	if len(windows.Elements()) == 0 {
		logger.Logger.Info("No NotificationCenter windows found")
		return nil, nil
	}

	elements, release, ok := l.descend(windows.Elements()[0])
	if !ok {
		logger.Logger.Info("Could not navigate to notification elements")
		return nil, nil
	}
	defer release()

	return FindAlerts(l.ax, elements), nil
}

// descend follows descentHops first-child hops from window and returns the
// children of the element reached. The returned elements are borrowed and
// stay valid until release is called.
func (l *Locator) descend(window platform.Element) (elements []platform.Element, release func(), ok bool) {
	var lists []platform.ElementList
	release = func() {
		for i := len(lists) - 1; i >= 0; i-- {
			lists[i].Release()
		}
	}

	cur := window
	for hop := 0; hop <= descentHops; hop++ {
		children, ok := l.ax.ElementsAttribute(cur, model.AttrChildren)
		if !ok {
			release()
			return nil, nil, false
		}
		lists = append(lists, children)
		if len(children.Elements()) == 0 {
			release()
			return nil, nil, false
		}
		cur = children.Elements()[0]
	}

	return lists[len(lists)-1].Elements(), release, true
}
