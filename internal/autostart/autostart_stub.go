//go:build !windows

// Package autostart manages launching the daemon at login.
package autostart

import "errors"

// ErrUnsupported is returned on hosts without a login-launch mechanism.
var ErrUnsupported = errors.New("autostart: not supported on this platform")

// Enabled always reports false off Windows.
func Enabled() (bool, error) { return false, nil }

// Enable always fails off Windows.
func Enable() error { return ErrUnsupported }

// Disable always fails off Windows.
func Disable() error { return ErrUnsupported }
