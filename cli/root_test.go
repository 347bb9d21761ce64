package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTimeCompressRejectsFactorBelowOne(t *testing.T) {
	_, err := execute(t, "time-compress", "in.pcap", "out.pcap", "--factor", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than 1")
}

func TestTimeStretchRejectsNonPositiveFactor(t *testing.T) {
	_, err := execute(t, "time-stretch", "in.pcap", "out.pcap", "--factor", "-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than 0")
}

func TestFactorFlagIsRequired(t *testing.T) {
	_, err := execute(t, "dilute", "in.pcap", "out.pcap")
	require.Error(t, err)
}

func TestCommandsRequireInputOutputArgs(t *testing.T) {
	_, err := execute(t, "augment", "only-one.pcap", "--factor", "2")
	require.Error(t, err)
}

func TestMissingInputFileSurfacesLoadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.pcap")
	out := filepath.Join(t.TempDir(), "out.pcap")

	_, err := execute(t, "dilute", missing, out, "--factor", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pcap-editor")
	assert.Contains(t, out, "Version")
}
