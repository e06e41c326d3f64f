// Package access reads and writes a per-channel property across a set of
// channel elements and folds the per-channel outcomes into one result.
package access

import (
	"fmt"
	"strings"

	"github.com/pion/volumectl/pkg/channel"
	"github.com/pion/volumectl/pkg/driver"
	"github.com/pion/volumectl/pkg/driver/availability"
	"github.com/pion/volumectl/pkg/property"
)

// Scalar is the set of value types the native service transfers for the
// supported properties: float32 for volume, uint32 for mute. Mute is never
// carried in a bool since the service gives no guarantee on its width.
type Scalar interface {
	float32 | uint32
}

// Op names the direction of an access.
type Op string

// Op definitions.
const (
	OpGet Op = "get"
	OpSet Op = "set"
)

// Outcome is the result of one channel access.
type Outcome struct {
	Channel property.Element
	Err     error
}

// AggregateError reports that at least one channel access failed. Outcomes
// holds one entry per attempted channel, in the order they were attempted.
type AggregateError struct {
	Op       Op
	Kind     property.Kind
	Outcomes []Outcome
}

// Failed returns the channels whose access failed.
func (e *AggregateError) Failed() channel.Set {
	var failed channel.Set
	for _, o := range e.Outcomes {
		if o.Err != nil {
			failed = append(failed, o.Channel)
		}
	}
	return failed
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s failed on %d of %d channels", e.Op, e.Kind, len(e.Failed()), len(e.Outcomes))
	for _, o := range e.Outcomes {
		if o.Err != nil {
			fmt.Fprintf(&b, "; channel %d: %v", o.Channel, o.Err)
		}
	}
	return b.String()
}

// Unwrap exposes the per-channel errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	var errs []error
	for _, o := range e.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errs
}

// Set writes value to kind on every channel. All channels are attempted even
// after a failure; the result is nil only if every write succeeded.
func Set[T Scalar](s driver.Service, dev driver.DeviceID, kind property.Kind, value T, channels channel.Set) error {
	if len(channels) == 0 {
		return fmt.Errorf("%s %s: %w", OpSet, kind, availability.ErrNoChannels)
	}

	outcomes := make([]Outcome, 0, len(channels))
	failed := false
	for _, c := range channels {
		err := s.SetPropertyData(dev, kind.Address(c), value)
		outcomes = append(outcomes, Outcome{Channel: c, Err: err})
		failed = failed || err != nil
	}

	if failed {
		return &AggregateError{Op: OpSet, Kind: kind, Outcomes: outcomes}
	}
	return nil
}

// Get reads kind from every channel. A failing channel does not stop the
// loop, but if any channel failed no values are returned at all.
func Get[T Scalar](s driver.Service, dev driver.DeviceID, kind property.Kind, channels channel.Set) ([]T, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%s %s: %w", OpGet, kind, availability.ErrNoChannels)
	}

	values := make([]T, 0, len(channels))
	outcomes := make([]Outcome, 0, len(channels))
	failed := false
	for _, c := range channels {
		var v T
		err := s.GetPropertyData(dev, kind.Address(c), &v)
		outcomes = append(outcomes, Outcome{Channel: c, Err: err})
		if err != nil {
			failed = true
			continue
		}
		values = append(values, v)
	}

	if failed {
		return nil, &AggregateError{Op: OpGet, Kind: kind, Outcomes: outcomes}
	}
	return values, nil
}
