package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfg, "--driver", "audiotest"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSetThenGet(t *testing.T) {
	_, err := run(t, "set", "40")
	require.NoError(t, err)

	out, err := run(t, "get")
	require.NoError(t, err)
	assert.Equal(t, "40\n", out)
}

func TestSetRejectsBadPercent(t *testing.T) {
	for _, arg := range []string{"loud", "-1", "101"} {
		t.Run(arg, func(t *testing.T) {
			_, err := run(t, "set", "--", arg)
			assert.Error(t, err)
		})
	}
}

func TestMuteRoundTrip(t *testing.T) {
	_, err := run(t, "mute")
	require.NoError(t, err)

	out, err := run(t, "muted")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, "unmute")
	require.NoError(t, err)

	out, err = run(t, "muted")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestChannels(t *testing.T) {
	out, err := run(t, "channels")
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", out)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--no-name")
	require.NoError(t, err)
	assert.Contains(t, out, "Device:   73\n")
	assert.Contains(t, out, "Channels: 1,2\n")
	assert.Contains(t, out, "Volume:")
	assert.Contains(t, out, "Muted:")
	assert.NotContains(t, out, "Name:")
}

func TestUnknownDriver(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "x.yaml"), "--driver", "nope", "get"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown driver "nope"`)
}

func TestConfigFileIsUsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("driver: audiotest\nmax_channels: 2\n"), 0o600))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "channels"})
	require.NoError(t, cmd.Execute())
	// Elements 0 and 1 are tested; only 1 has a volume.
	assert.Equal(t, "1\n", out.String())
}

func TestFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("driver: nope\n"), 0o600))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "--driver", "audiotest", "channels"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1,2\n", out.String())
}

func TestDrivers(t *testing.T) {
	out, err := run(t, "drivers")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "audiotest\t"))
}
