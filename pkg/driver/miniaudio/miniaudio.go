//go:build !nominiaudio

package miniaudio

import (
	"fmt"

	"github.com/gen2brain/malgo"
	ilogging "github.com/pion/volumectl/internal/logging"
	"github.com/pion/volumectl/pkg/driver/availability"
)

var logger = ilogging.NewLogger("volumectl/driver/miniaudio")

// DefaultPlayback describes the default playback device as miniaudio sees it.
func DefaultPlayback() (Device, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		logger.Debugf("%v\n", message)
	})
	if err != nil {
		return Device{}, fmt.Errorf("failed to init miniaudio context: %w", err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	devices, err := ctx.Devices(malgo.Playback)
	if err != nil {
		return Device{}, fmt.Errorf("failed to list playback devices: %w", err)
	}

	for i := range devices {
		if devices[i].IsDefault > 0 {
			return Device{
				ID:        devices[i].ID.String(),
				Name:      devices[i].Name(),
				IsDefault: true,
			}, nil
		}
	}

	// Some backends flag no device as default; the first one is what they
	// play to.
	if len(devices) > 0 {
		logger.Debug("no playback device is flagged as default, using the first one")
		return Device{ID: devices[0].ID.String(), Name: devices[0].Name()}, nil
	}
	return Device{}, availability.ErrNoDevice
}
