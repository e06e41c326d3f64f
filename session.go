package volumectl

import (
	"fmt"

	"github.com/pion/logging"
	ilogging "github.com/pion/volumectl/internal/logging"
	"github.com/pion/volumectl/pkg/channel"
	"github.com/pion/volumectl/pkg/driver"
	"github.com/pion/volumectl/pkg/driver/availability"
	"github.com/pion/volumectl/pkg/property"
)

// Session owns the default output device handle and the channels of it that
// are controllable.
//
// A Session is not safe for concurrent use. It has a single owner at a time;
// callers sharing one must serialize Init, Deinit and every property call
// themselves.
type Session struct {
	SessionOptions

	svc      driver.Service
	device   driver.DeviceID
	channels channel.Set
	state    driver.State
	log      logging.LeveledLogger
}

// NewSession creates an uninitialized session.
func NewSession(opts ...SessionOption) *Session {
	o := SessionOptions{
		loggerFactory: ilogging.Factory(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{
		SessionOptions: o,
		device:         driver.UnknownDevice,
		state:          driver.StateClosed,
		log:            o.loggerFactory.NewLogger("volumectl"),
	}
}

// Init discovers the default output device and probes which of its channels
// expose a volume. The session stays uninitialized if either step fails.
// Calling Init on an initialized session starts over, since the default
// device may have changed in between.
func (s *Session) Init() error {
	s.Deinit()

	return s.state.Update(driver.StateOpened, func() error {
		svc, err := s.resolveService()
		if err != nil {
			return err
		}

		dev, err := svc.DefaultOutputDevice()
		if err != nil {
			s.log.Warnf("failed to get the default output device: %v", err)
			return fmt.Errorf("%w: %w", availability.ErrNoDevice, err)
		}

		opts := append([]channel.Option{channel.WithLogger(s.loggerFactory.NewLogger("volumectl/channel"))}, s.probeOptions...)
		channels, err := channel.Probe(svc, dev, property.Volume, opts...)
		if err != nil {
			s.log.Warnf("device %d has no controllable channels", dev)
			return err
		}

		s.svc = svc
		s.device = dev
		s.channels = channels
		s.log.Infof("initialized device %d with channels %v", dev, channels)
		return nil
	})
}

// Deinit forgets the device and its channels. It is safe to call on an
// uninitialized session.
func (s *Session) Deinit() {
	_ = s.state.Update(driver.StateClosed, func() error {
		s.svc = nil
		s.device = driver.UnknownDevice
		s.channels = nil
		return nil
	})
}

// IsInitialized reports whether Init succeeded and Deinit was not called
// since.
func (s *Session) IsInitialized() bool {
	return s.state == driver.StateOpened
}

// Device returns the device handle, driver.UnknownDevice when uninitialized.
func (s *Session) Device() driver.DeviceID {
	return s.device
}

// Channels returns a copy of the cached channel set.
func (s *Session) Channels() channel.Set {
	return s.channels.Clone()
}

// SetChannels overrides the cached channel set until the next Init or
// Deinit.
func (s *Session) SetChannels(channels channel.Set) error {
	if !s.IsInitialized() {
		return availability.ErrNotInitialized
	}
	if len(channels) == 0 {
		return availability.ErrNoChannels
	}
	s.channels = channels.Clone()
	return nil
}

func (s *Session) resolveService() (driver.Service, error) {
	if s.service != nil {
		return s.service, nil
	}

	entry, ok := driver.GetManager().Preferred()
	if !ok {
		return nil, fmt.Errorf("no audio service registered: %w", availability.ErrNoDevice)
	}
	s.log.Debugf("using audio service %q", entry.Info.Label)
	return entry.Service, nil
}
