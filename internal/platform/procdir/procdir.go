// Package procdir looks up running processes by name using gopsutil.
package procdir

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// Directory implements platform.ProcessDirectory over the OS process table.
type Directory struct {
	// list is swapped in tests.
	list func(ctx context.Context) ([]namedProcess, error)
}

type namedProcess interface {
	NameWithContext(ctx context.Context) (string, error)
	PidValue() int32
}

type gopsProcess struct{ *process.Process }

func (p gopsProcess) PidValue() int32 { return p.Pid }

// New returns a Directory backed by gopsutil.
func New() *Directory {
	return &Directory{list: listProcesses}
}

func listProcesses(ctx context.Context) ([]namedProcess, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]namedProcess, len(procs))
	for i, p := range procs {
		out[i] = gopsProcess{p}
	}
	return out, nil
}

// FindByExactName returns the pid of the first process whose name equals
// name. Processes whose name cannot be read (exited, or owned by another
// user) are skipped.
func (d *Directory) FindByExactName(ctx context.Context, name string) (int32, bool, error) {
	procs, err := d.list(ctx)
	if err != nil {
		return 0, false, errors.Wrap(err, "list processes")
	}
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}
		n, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if n == name {
			return p.PidValue(), true, nil
		}
	}
	return 0, false, nil
}
