// Package darwin provides the macOS accessibility binding using the
// ApplicationServices AXUIElement API.
// All functionality requires CGo. When CGo is disabled, or on other
// operating systems, the package compiles empty and registers nothing.
package darwin
