// Package channel discovers which channel elements of a device expose a
// property.
package channel

import (
	"fmt"

	"github.com/pion/logging"
	ilogging "github.com/pion/volumectl/internal/logging"
	"github.com/pion/volumectl/pkg/driver"
	"github.com/pion/volumectl/pkg/driver/availability"
	"github.com/pion/volumectl/pkg/property"
)

const (
	// DefaultMaxFailures is the failure budget of a probe.
	DefaultMaxFailures = 3
	// DefaultMaxChannels bounds the number of elements a probe tests.
	DefaultMaxChannels = 32
)

// Set is an ascending list of channel elements.
type Set []property.Element

// Contains reports whether e is in s.
func (s Set) Contains(e property.Element) bool {
	for _, c := range s {
		if c == e {
			return true
		}
	}
	return false
}

// Clone returns a copy of s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	return append(Set(nil), s...)
}

// Policy decides how successes interact with the failure counter.
type Policy int

const (
	// Cumulative never resets the failure counter: the scan stops after
	// MaxFailures failed elements in total.
	Cumulative Policy = iota
	// Consecutive resets the failure counter on every success: the scan
	// stops after MaxFailures failed elements in a row.
	Consecutive
)

func (p Policy) String() string {
	switch p {
	case Cumulative:
		return "cumulative"
	case Consecutive:
		return "consecutive"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses the String form of a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "cumulative", "":
		return Cumulative, nil
	case "consecutive":
		return Consecutive, nil
	default:
		return 0, fmt.Errorf("unknown probe policy %q", s)
	}
}

// Options controls a probe.
type Options struct {
	MaxFailures int
	MaxChannels int
	Policy      Policy
	Logger      logging.LeveledLogger
}

// Option is a type of Probe functional option.
type Option func(*Options)

// WithMaxFailures sets the failure budget. Values below 1 are ignored.
func WithMaxFailures(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxFailures = n
		}
	}
}

// WithMaxChannels bounds the number of tested elements. Values below 1 are
// ignored.
func WithMaxChannels(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxChannels = n
		}
	}
}

// WithPolicy selects the failure counting policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithLogger sets the logger probe decisions are traced to.
func WithLogger(l logging.LeveledLogger) Option {
	return func(o *Options) { o.Logger = l }
}

var logger = ilogging.NewLogger("volumectl/channel")

// Probe tests, starting at element 0, whether dev exposes kind on each
// element, using an existence query rather than a read. Elements that answer
// positively are returned in ascending order.
//
// The native service offers no channel count for per-channel properties, so
// this scan is a heuristic: a device whose controllable elements are spread
// beyond the failure budget will be reported with fewer channels.
//
// An empty result is returned together with availability.ErrNoChannels.
func Probe(s driver.Service, dev driver.DeviceID, kind property.Kind, opts ...Option) (Set, error) {
	o := Options{
		MaxFailures: DefaultMaxFailures,
		MaxChannels: DefaultMaxChannels,
		Policy:      Cumulative,
		Logger:      logger,
	}
	for _, opt := range opts {
		opt(&o)
	}

	set := Set{}
	failures := 0
	for e := 0; failures < o.MaxFailures && e < o.MaxChannels; e++ {
		element := property.Element(e)
		if s.HasProperty(dev, kind.Address(element)) {
			set = append(set, element)
			if o.Policy == Consecutive {
				failures = 0
			}
			continue
		}
		failures++
		o.Logger.Tracef("device %d has no %s on element %d (%d/%d failures)", dev, kind, element, failures, o.MaxFailures)
	}

	o.Logger.Debugf("device %d: %s channels %v (%s)", dev, kind, set, o.Policy)
	if len(set) == 0 {
		return set, fmt.Errorf("probe %s on device %d: %w", kind, dev, availability.ErrNoChannels)
	}
	return set, nil
}
