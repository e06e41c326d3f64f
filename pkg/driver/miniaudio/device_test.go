package miniaudio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceString(t *testing.T) {
	assert.Equal(t, "Built-in Output", Device{ID: "abc", Name: "Built-in Output"}.String())
	assert.Equal(t, "abc", Device{ID: "abc"}.String())
}
