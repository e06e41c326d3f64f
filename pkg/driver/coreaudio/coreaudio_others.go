//go:build !darwin || !cgo

package coreaudio

import (
	"fmt"

	"github.com/pion/volumectl/pkg/driver/availability"
)

// Available reports whether CoreAudio is linked in (stub without Darwin cgo)
func Available() bool {
	return false
}

// Check returns why CoreAudio cannot be used (stub without Darwin cgo)
func Check() error {
	return fmt.Errorf("coreaudio is not supported on this platform: %w", availability.ErrUnimplemented)
}
