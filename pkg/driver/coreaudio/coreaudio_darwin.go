//go:build darwin && cgo

package coreaudio

// #cgo LDFLAGS: -framework CoreAudio -framework CoreFoundation
// #include <CoreAudio/CoreAudio.h>
import "C"
import (
	"unsafe"

	ilogging "github.com/pion/volumectl/internal/logging"
	"github.com/pion/volumectl/pkg/driver"
	"github.com/pion/volumectl/pkg/property"
)

var logger = ilogging.NewLogger("volumectl/driver/coreaudio")

func init() {
	if err := driver.GetManager().Register(&hal{}, driver.Info{
		Label:    "coreaudio",
		Priority: driver.PriorityHigh,
	}); err != nil {
		logger.Errorf("failed to register: %v", err)
	}
}

// hal talks to the CoreAudio HAL. Every OSStatus other than
// kAudioHardwareNoError is reported as a *driver.StatusError.
type hal struct{}

var _ driver.Service = &hal{}

func cAddress(addr property.Address) C.AudioObjectPropertyAddress {
	return C.AudioObjectPropertyAddress{
		mSelector: C.AudioObjectPropertySelector(addr.Selector),
		mScope:    C.AudioObjectPropertyScope(addr.Scope),
		mElement:  C.AudioObjectPropertyElement(addr.Element),
	}
}

func status(code C.OSStatus, addr property.Address) error {
	if code == C.kAudioHardwareNoError {
		return nil
	}
	return &driver.StatusError{Code: int32(code), Addr: addr}
}

func (h *hal) DefaultOutputDevice() (driver.DeviceID, error) {
	addr := property.DefaultOutputDevice.Address(property.ElementMain)
	cAddr := cAddress(addr)

	var id C.AudioObjectID
	size := C.UInt32(unsafe.Sizeof(id))
	code := C.AudioObjectGetPropertyData(C.AudioObjectID(C.kAudioObjectSystemObject), &cAddr, 0, nil, &size, unsafe.Pointer(&id))
	if err := status(code, addr); err != nil {
		return driver.UnknownDevice, err
	}

	logger.Debugf("default output device is %d", id)
	return driver.DeviceID(id), nil
}

func (h *hal) HasProperty(dev driver.DeviceID, addr property.Address) bool {
	cAddr := cAddress(addr)
	return C.AudioObjectHasProperty(C.AudioObjectID(dev), &cAddr) != 0
}

func (h *hal) GetPropertyData(dev driver.DeviceID, addr property.Address, data any) error {
	cAddr := cAddress(addr)

	var (
		ptr  unsafe.Pointer
		size C.UInt32
	)
	switch v := data.(type) {
	case *float32:
		ptr, size = unsafe.Pointer(v), C.UInt32(unsafe.Sizeof(*v))
	case *uint32:
		ptr, size = unsafe.Pointer(v), C.UInt32(unsafe.Sizeof(*v))
	default:
		return &driver.UnsupportedDataError{Data: data}
	}

	code := C.AudioObjectGetPropertyData(C.AudioObjectID(dev), &cAddr, 0, nil, &size, ptr)
	return status(code, addr)
}

func (h *hal) SetPropertyData(dev driver.DeviceID, addr property.Address, data any) error {
	cAddr := cAddress(addr)

	switch v := data.(type) {
	case float32:
		value := C.Float32(v)
		code := C.AudioObjectSetPropertyData(C.AudioObjectID(dev), &cAddr, 0, nil, C.UInt32(unsafe.Sizeof(value)), unsafe.Pointer(&value))
		return status(code, addr)
	case uint32:
		value := C.UInt32(v)
		code := C.AudioObjectSetPropertyData(C.AudioObjectID(dev), &cAddr, 0, nil, C.UInt32(unsafe.Sizeof(value)), unsafe.Pointer(&value))
		return status(code, addr)
	default:
		return &driver.UnsupportedDataError{Data: data}
	}
}

// Available reports whether CoreAudio is linked in.
func Available() bool {
	return true
}

// Check returns nil when a default output device can be resolved.
func Check() error {
	_, err := (&hal{}).DefaultOutputDevice()
	return err
}
