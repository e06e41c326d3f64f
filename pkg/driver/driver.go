package driver

import (
	"fmt"

	"github.com/pion/volumectl/pkg/property"
)

// DeviceID is the native identifier of an audio device.
type DeviceID uint32

// UnknownDevice is the null device handle.
const UnknownDevice DeviceID = 0

// Service is the narrow capability set the native audio subsystem has to
// expose. Implementations treat every native status other than "no error"
// as a failure.
//
// GetPropertyData fills data, which is either *float32 or *uint32.
// SetPropertyData writes data, which is either float32 or uint32.
type Service interface {
	DefaultOutputDevice() (DeviceID, error)
	HasProperty(dev DeviceID, addr property.Address) bool
	GetPropertyData(dev DeviceID, addr property.Address, data any) error
	SetPropertyData(dev DeviceID, addr property.Address, data any) error
}

// Info describes a registered Service.
type Info struct {
	Label    string
	Priority Priority
}

// StatusError carries a native status code that is not "no error".
type StatusError struct {
	Code int32
	Addr property.Address
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("audio service status %d (%s) at %s", e.Code, statusName(e.Code), e.Addr)
}

// UnsupportedDataError is returned when a Service is handed a value type it
// cannot transfer.
type UnsupportedDataError struct {
	Data any
}

func (e *UnsupportedDataError) Error() string {
	return fmt.Sprintf("unsupported property data type %T", e.Data)
}

func statusName(code int32) string {
	v := uint32(code)
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range b {
		if c < ' ' || c > '~' {
			return "unknown"
		}
	}
	return string(b)
}
