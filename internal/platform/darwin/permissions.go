//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int is_trusted() {
    return AXIsProcessTrusted();
}
*/
import "C"

import (
	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/platform"
)

// CheckAccessibilityPermission checks if the process has macOS accessibility permission.
// Returns platform.ErrPermissionDenied with instructions if permission is not granted.
func CheckAccessibilityPermission() error {
	if C.is_trusted() == 0 {
		return errors.WithHint(platform.ErrPermissionDenied,
			"Grant permission at: System Settings > Privacy & Security > Accessibility\n"+
				"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n"+
				"Then restart the terminal and try again.")
	}
	return nil
}

