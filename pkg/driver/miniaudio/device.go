// Package miniaudio names the default playback device through miniaudio.
// It is informational only: volume and mute are never changed through it.
package miniaudio

// Device describes a playback device.
type Device struct {
	// ID is the backend specific device identifier
	ID   string
	Name string
	// IsDefault is false when the backend flags no device as default
	IsDefault bool
}

func (d Device) String() string {
	if d.Name == "" {
		return d.ID
	}
	return d.Name
}
