package volumectl

import (
	"errors"
	"math"

	"github.com/pion/volumectl/pkg/access"
	"github.com/pion/volumectl/pkg/channel"
	"github.com/pion/volumectl/pkg/driver/availability"
	"github.com/pion/volumectl/pkg/property"
)

// muteFallbackChannel is the only element some devices accept mute on, even
// when their volume is addressable per channel.
const muteFallbackChannel property.Element = 0

// SetVolume sets every cached channel to percent/100. Values outside 0-100
// are passed to the audio service unchanged; what the device makes of them
// is up to the device.
func (s *Session) SetVolume(percent int) error {
	if !s.IsInitialized() {
		return availability.ErrNotInitialized
	}
	return access.Set(s.svc, s.device, property.Volume, float32(percent)/100, s.channels)
}

// Volume returns the mean volume of the cached channels in percent, rounded
// to the nearest integer. The mean is clamped to 0.0-1.0 first, so the result
// is always within 0-100; a NaN mean reads as 0.
func (s *Session) Volume() (int, error) {
	if !s.IsInitialized() {
		return 0, availability.ErrNotInitialized
	}

	volumes, err := access.Get[float32](s.svc, s.device, property.Volume, s.channels)
	if err != nil {
		return 0, err
	}

	var sum float32
	for _, v := range volumes {
		sum += v
	}
	mean := float64(sum / float32(len(volumes)))
	return int(math.Round(clampScalar(mean) * 100)), nil
}

func clampScalar(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// SetMute sets the mute state of every cached channel. If that fails it is
// tried once more on muteFallbackChannel alone.
func (s *Session) SetMute(state bool) error {
	if !s.IsInitialized() {
		return availability.ErrNotInitialized
	}

	var v uint32
	if state {
		v = 1
	}

	err := access.Set(s.svc, s.device, property.Mute, v, s.channels)
	if err == nil {
		return nil
	}

	s.log.Debugf("set mute on channels %v failed, retrying on channel %d: %v", s.channels, muteFallbackChannel, err)
	if fallbackErr := access.Set(s.svc, s.device, property.Mute, v, channel.Set{muteFallbackChannel}); fallbackErr != nil {
		return errors.Join(err, fallbackErr)
	}
	return nil
}

// Mute is SetMute(true).
func (s *Session) Mute() error {
	return s.SetMute(true)
}

// Unmute is SetMute(false).
func (s *Session) Unmute() error {
	return s.SetMute(false)
}

// Muted reports whether every read channel is muted. A single unmuted channel
// makes the device unmuted. If reading the cached channels fails the state is
// read from muteFallbackChannel alone.
func (s *Session) Muted() (bool, error) {
	if !s.IsInitialized() {
		return false, availability.ErrNotInitialized
	}

	states, err := access.Get[uint32](s.svc, s.device, property.Mute, s.channels)
	if err != nil {
		s.log.Debugf("get mute on channels %v failed, retrying on channel %d: %v", s.channels, muteFallbackChannel, err)

		var fallbackErr error
		states, fallbackErr = access.Get[uint32](s.svc, s.device, property.Mute, channel.Set{muteFallbackChannel})
		if fallbackErr != nil {
			return false, errors.Join(err, fallbackErr)
		}
	}

	muted := true
	for _, state := range states {
		muted = muted && state != 0
	}
	return muted, nil
}
