//go:build darwin && cgo

package darwin

import (
	"github.com/mj1618/nc-clear/internal/platform"
	"github.com/mj1618/nc-clear/internal/platform/procdir"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Accessibility:   NewAccessibility(),
			Processes:       procdir.New(),
			CheckPermission: CheckAccessibilityPermission,
		}, nil
	}
}
