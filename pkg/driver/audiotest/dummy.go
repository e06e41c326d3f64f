// Package audiotest provides a synthetic output device for testing.
package audiotest

import (
	"math"

	"github.com/pion/volumectl/pkg/driver"
	"github.com/pion/volumectl/pkg/property"
)

// Native status codes the synthetic device reports.
const (
	StatusBadObject       int32 = '!'<<24 | 'o'<<16 | 'b'<<8 | 'j'
	StatusUnknownProperty int32 = 'w'<<24 | 'h'<<16 | 'o'<<8 | '?'
	StatusUnspecified     int32 = 'w'<<24 | 'h'<<16 | 'a'<<8 | 't'
)

// DefaultDeviceID is the handle the registered synthetic device reports.
const DefaultDeviceID driver.DeviceID = 73

func init() {
	// Volume on both stereo elements, mute only on the main element.
	d := New(WithVolumeChannels(1, 2), WithMuteChannels(0))
	driver.GetManager().Register(d, driver.Info{Label: "audiotest", Priority: driver.PriorityLow})
}

type fault struct {
	kind    property.Kind
	element property.Element
}

// Device is an in-memory output device. It is not safe for concurrent use.
type Device struct {
	id         driver.DeviceID
	noDefault  bool
	steps      int
	volumes    map[property.Element]float32
	mutes      map[property.Element]uint32
	getFaults  map[fault]bool
	setFaults  map[fault]bool
	probed     []property.Address
	writeCount int
}

var _ driver.Service = &Device{}

// Option configures a Device.
type Option func(*Device)

// WithDeviceID sets the handle returned as the default output device.
func WithDeviceID(id driver.DeviceID) Option {
	return func(d *Device) { d.id = id }
}

// WithChannels exposes both volume and mute on elements.
func WithChannels(elements ...property.Element) Option {
	return func(d *Device) {
		WithVolumeChannels(elements...)(d)
		WithMuteChannels(elements...)(d)
	}
}

// WithVolumeChannels exposes volume on elements only.
func WithVolumeChannels(elements ...property.Element) Option {
	return func(d *Device) {
		d.volumes = make(map[property.Element]float32, len(elements))
		for _, e := range elements {
			d.volumes[e] = 1
		}
	}
}

// WithMuteChannels exposes mute on elements only.
func WithMuteChannels(elements ...property.Element) Option {
	return func(d *Device) {
		d.mutes = make(map[property.Element]uint32, len(elements))
		for _, e := range elements {
			d.mutes[e] = 0
		}
	}
}

// WithQuantization makes the device store volumes in steps discrete levels,
// the way hardware with a fixed number of volume steps does.
func WithQuantization(steps int) Option {
	return func(d *Device) { d.steps = steps }
}

// WithoutDefaultDevice makes default output device discovery fail.
func WithoutDefaultDevice() Option {
	return func(d *Device) { d.noDefault = true }
}

// New creates a mono device exposing volume and mute on element 0 unless
// configured otherwise.
func New(opts ...Option) *Device {
	d := &Device{
		id:        DefaultDeviceID,
		getFaults: make(map[fault]bool),
		setFaults: make(map[fault]bool),
	}
	WithChannels(0)(d)
	for _, o := range opts {
		o(d)
	}
	return d
}

// FailGet makes reads of kind on elements fail.
func (d *Device) FailGet(kind property.Kind, elements ...property.Element) {
	for _, e := range elements {
		d.getFaults[fault{kind, e}] = true
	}
}

// FailSet makes writes of kind on elements fail.
func (d *Device) FailSet(kind property.Kind, elements ...property.Element) {
	for _, e := range elements {
		d.setFaults[fault{kind, e}] = true
	}
}

// ClearFaults removes every injected failure.
func (d *Device) ClearFaults() {
	d.getFaults = make(map[fault]bool)
	d.setFaults = make(map[fault]bool)
}

// SetDefaultAvailable toggles default output device discovery.
func (d *Device) SetDefaultAvailable(available bool) {
	d.noDefault = !available
}

// SetVolumeScalar sets the raw volume of element, bypassing the service API.
func (d *Device) SetVolumeScalar(e property.Element, v float32) {
	d.volumes[e] = v
}

// VolumeScalar returns the raw volume of element.
func (d *Device) VolumeScalar(e property.Element) float32 {
	return d.volumes[e]
}

// SetMuteState sets the raw mute state of element, bypassing the service API.
func (d *Device) SetMuteState(e property.Element, v uint32) {
	d.mutes[e] = v
}

// MuteState returns the raw mute state of element.
func (d *Device) MuteState(e property.Element) uint32 {
	return d.mutes[e]
}

// Probed returns every address HasProperty was asked about, in order.
func (d *Device) Probed() []property.Address {
	return append([]property.Address(nil), d.probed...)
}

// Writes returns the number of SetPropertyData calls, successful or not.
func (d *Device) Writes() int {
	return d.writeCount
}

func (d *Device) DefaultOutputDevice() (driver.DeviceID, error) {
	addr := property.DefaultOutputDevice.Address(property.ElementMain)
	if d.noDefault {
		return driver.UnknownDevice, &driver.StatusError{Code: StatusUnspecified, Addr: addr}
	}
	return d.id, nil
}

func (d *Device) HasProperty(dev driver.DeviceID, addr property.Address) bool {
	d.probed = append(d.probed, addr)
	if dev != d.id {
		return false
	}
	_, ok := d.lookup(addr)
	return ok
}

func (d *Device) GetPropertyData(dev driver.DeviceID, addr property.Address, data any) error {
	kind, err := d.check(dev, addr, d.getFaults)
	if err != nil {
		return err
	}

	switch v := data.(type) {
	case *float32:
		if kind != property.Volume {
			return &driver.UnsupportedDataError{Data: data}
		}
		*v = d.volumes[addr.Element]
	case *uint32:
		if kind != property.Mute {
			return &driver.UnsupportedDataError{Data: data}
		}
		*v = d.mutes[addr.Element]
	default:
		return &driver.UnsupportedDataError{Data: data}
	}
	return nil
}

func (d *Device) SetPropertyData(dev driver.DeviceID, addr property.Address, data any) error {
	d.writeCount++
	kind, err := d.check(dev, addr, d.setFaults)
	if err != nil {
		return err
	}

	switch v := data.(type) {
	case float32:
		if kind != property.Volume {
			return &driver.UnsupportedDataError{Data: data}
		}
		d.volumes[addr.Element] = d.quantize(v)
	case uint32:
		if kind != property.Mute {
			return &driver.UnsupportedDataError{Data: data}
		}
		d.mutes[addr.Element] = v
	default:
		return &driver.UnsupportedDataError{Data: data}
	}
	return nil
}

func (d *Device) check(dev driver.DeviceID, addr property.Address, faults map[fault]bool) (property.Kind, error) {
	if dev != d.id {
		return 0, &driver.StatusError{Code: StatusBadObject, Addr: addr}
	}
	kind, ok := d.lookup(addr)
	if !ok || kind == property.DefaultOutputDevice {
		return 0, &driver.StatusError{Code: StatusUnknownProperty, Addr: addr}
	}
	if faults[fault{kind, addr.Element}] {
		return 0, &driver.StatusError{Code: StatusUnspecified, Addr: addr}
	}
	return kind, nil
}

func (d *Device) lookup(addr property.Address) (property.Kind, bool) {
	switch {
	case addr == property.DefaultOutputDevice.Address(property.ElementMain):
		return property.DefaultOutputDevice, true
	case addr == property.Volume.Address(addr.Element):
		_, ok := d.volumes[addr.Element]
		return property.Volume, ok
	case addr == property.Mute.Address(addr.Element):
		_, ok := d.mutes[addr.Element]
		return property.Mute, ok
	}
	return 0, false
}

// quantize clamps v to the scalar range and snaps it to the device's steps.
func (d *Device) quantize(v float32) float32 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if d.steps <= 0 {
		return v
	}
	return float32(math.Round(float64(v)*float64(d.steps)) / float64(d.steps))
}
