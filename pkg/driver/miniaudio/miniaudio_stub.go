//go:build nominiaudio
// +build nominiaudio

package miniaudio

import (
	"fmt"

	"github.com/pion/volumectl/pkg/driver/availability"
)

// This stub file is used when building with the 'nominiaudio' build tag.
// Use this when cross-compiling or when malgo (miniaudio) dependencies are not available.
//
// To build without miniaudio support:
//   go build -tags nominiaudio

// DefaultPlayback always fails when miniaudio is not linked in.
func DefaultPlayback() (Device, error) {
	return Device{}, fmt.Errorf("miniaudio: %w", availability.ErrUnimplemented)
}
