package volumectl

import (
	"github.com/pion/logging"
	"github.com/pion/volumectl/pkg/channel"
	"github.com/pion/volumectl/pkg/driver"
)

// SessionOptions stores parameters used by Session.
type SessionOptions struct {
	service       driver.Service
	probeOptions  []channel.Option
	loggerFactory logging.LoggerFactory
}

// SessionOption is a type of Session functional option.
type SessionOption func(*SessionOptions)

// WithService pins the audio service the session talks to. Without it the
// highest priority service registered in driver.GetManager is used, resolved
// on every Init.
func WithService(s driver.Service) SessionOption {
	return func(o *SessionOptions) {
		o.service = s
	}
}

// WithMaxProbeFailures sets the failure budget of the channel probe.
func WithMaxProbeFailures(n int) SessionOption {
	return func(o *SessionOptions) {
		o.probeOptions = append(o.probeOptions, channel.WithMaxFailures(n))
	}
}

// WithMaxChannels bounds the number of elements the channel probe tests.
func WithMaxChannels(n int) SessionOption {
	return func(o *SessionOptions) {
		o.probeOptions = append(o.probeOptions, channel.WithMaxChannels(n))
	}
}

// WithProbePolicy selects how the channel probe counts failures.
func WithProbePolicy(p channel.Policy) SessionOption {
	return func(o *SessionOptions) {
		o.probeOptions = append(o.probeOptions, channel.WithPolicy(p))
	}
}

// WithLoggerFactory sets the factory the session creates its loggers from.
func WithLoggerFactory(f logging.LoggerFactory) SessionOption {
	return func(o *SessionOptions) {
		o.loggerFactory = f
	}
}
