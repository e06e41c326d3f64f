package audiotest

import (
	"errors"
	"testing"

	"github.com/pion/volumectl/pkg/driver"
	"github.com/pion/volumectl/pkg/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	s, ok := driver.GetManager().Lookup("audiotest")
	require.True(t, ok)

	d := s.(*Device)
	assert.True(t, d.HasProperty(DefaultDeviceID, property.Volume.Address(1)))
	assert.True(t, d.HasProperty(DefaultDeviceID, property.Volume.Address(2)))
	assert.False(t, d.HasProperty(DefaultDeviceID, property.Volume.Address(0)))
	assert.True(t, d.HasProperty(DefaultDeviceID, property.Mute.Address(0)))
	assert.False(t, d.HasProperty(DefaultDeviceID, property.Mute.Address(1)))
}

func TestDefaultOutputDevice(t *testing.T) {
	d := New(WithDeviceID(12))
	id, err := d.DefaultOutputDevice()
	require.NoError(t, err)
	assert.Equal(t, driver.DeviceID(12), id)

	d.SetDefaultAvailable(false)
	id, err = d.DefaultOutputDevice()
	assert.Equal(t, driver.UnknownDevice, id)

	var statusErr *driver.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, StatusUnspecified, statusErr.Code)
}

func TestReadWrite(t *testing.T) {
	d := New(WithChannels(0, 1))

	require.NoError(t, d.SetPropertyData(DefaultDeviceID, property.Volume.Address(1), float32(0.25)))
	var v float32
	require.NoError(t, d.GetPropertyData(DefaultDeviceID, property.Volume.Address(1), &v))
	assert.Equal(t, float32(0.25), v)

	require.NoError(t, d.SetPropertyData(DefaultDeviceID, property.Mute.Address(0), uint32(1)))
	var m uint32
	require.NoError(t, d.GetPropertyData(DefaultDeviceID, property.Mute.Address(0), &m))
	assert.Equal(t, uint32(1), m)

	assert.Equal(t, 2, d.Writes())
}

func TestErrors(t *testing.T) {
	d := New()
	var v float32
	var statusErr *driver.StatusError

	err := d.GetPropertyData(DefaultDeviceID+1, property.Volume.Address(0), &v)
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, StatusBadObject, statusErr.Code)

	err = d.GetPropertyData(DefaultDeviceID, property.Volume.Address(5), &v)
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, StatusUnknownProperty, statusErr.Code)

	var unsupported *driver.UnsupportedDataError
	err = d.SetPropertyData(DefaultDeviceID, property.Mute.Address(0), true)
	assert.True(t, errors.As(err, &unsupported))
	err = d.GetPropertyData(DefaultDeviceID, property.Mute.Address(0), &v)
	assert.True(t, errors.As(err, &unsupported))

	d.FailGet(property.Volume, 0)
	err = d.GetPropertyData(DefaultDeviceID, property.Volume.Address(0), &v)
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, StatusUnspecified, statusErr.Code)

	d.FailSet(property.Mute, 0)
	assert.Error(t, d.SetPropertyData(DefaultDeviceID, property.Mute.Address(0), uint32(1)))

	d.ClearFaults()
	assert.NoError(t, d.GetPropertyData(DefaultDeviceID, property.Volume.Address(0), &v))
	assert.NoError(t, d.SetPropertyData(DefaultDeviceID, property.Mute.Address(0), uint32(1)))
}

func TestQuantization(t *testing.T) {
	d := New(WithQuantization(16))

	require.NoError(t, d.SetPropertyData(DefaultDeviceID, property.Volume.Address(0), float32(0.3)))
	assert.Equal(t, float32(0.3125), d.VolumeScalar(0))

	require.NoError(t, d.SetPropertyData(DefaultDeviceID, property.Volume.Address(0), float32(1.7)))
	assert.Equal(t, float32(1), d.VolumeScalar(0))

	require.NoError(t, d.SetPropertyData(DefaultDeviceID, property.Volume.Address(0), float32(-0.2)))
	assert.Equal(t, float32(0), d.VolumeScalar(0))
}

func TestProbed(t *testing.T) {
	d := New()
	d.HasProperty(DefaultDeviceID, property.Volume.Address(0))
	d.HasProperty(DefaultDeviceID, property.Volume.Address(1))

	assert.Equal(t, []property.Address{
		property.Volume.Address(0),
		property.Volume.Address(1),
	}, d.Probed())
}
