// Package volumectl controls the volume and mute state of the system's
// default audio output device.
//
// The package level functions operate on Default and report failures through
// sentinel values only: false for operations returning bool, -1 for reads
// returning an int. Use a Session directly to get the underlying errors.
//
// Audio services are picked up from driver.GetManager, so at least one has
// to be linked in:
//
//	import _ "github.com/pion/volumectl/pkg/driver/coreaudio"
package volumectl

// Default is the process-wide session behind the package level functions.
// Like any Session it has a single owner at a time.
var Default = NewSession()

// Init initializes Default.
func Init() bool {
	return Default.Init() == nil
}

// Deinit deinitializes Default.
func Deinit() {
	Default.Deinit()
}

// IsInitialized reports whether Default is initialized.
func IsInitialized() bool {
	return Default.IsInitialized()
}

// SetVolume sets the volume of the default output device in percent.
func SetVolume(percent int) bool {
	return Default.SetVolume(percent) == nil
}

// GetVolume returns the volume of the default output device in percent, or
// -1 if it could not be read.
func GetVolume() int {
	v, err := Default.Volume()
	if err != nil {
		return -1
	}
	return v
}

// SetMute sets the mute state of the default output device.
func SetMute(state bool) bool {
	return Default.SetMute(state) == nil
}

// Mute mutes the default output device.
func Mute() bool {
	return SetMute(true)
}

// Unmute unmutes the default output device.
func Unmute() bool {
	return SetMute(false)
}

// GetMute returns 1 if the default output device is muted, 0 if it is not,
// and -1 if the state could not be read.
func GetMute() int {
	muted, err := Default.Muted()
	if err != nil {
		return -1
	}
	if muted {
		return 1
	}
	return 0
}
