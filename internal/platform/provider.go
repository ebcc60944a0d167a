package platform

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	Accessibility Accessibility
	Processes     ProcessDirectory

	// CheckPermission returns ErrPermissionDenied when the process may not
	// use the accessibility API. Nil means no check is needed.
	CheckPermission func() error
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = errors.Newf("nc-clear is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// ErrPermissionDenied is returned when accessibility access has not been granted.
var ErrPermissionDenied = errors.New("accessibility permission required")

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
