package walletloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAddresses(t *testing.T) {
	t.Parallel()

	in := "  0xAbC0000000000000000000000000000000000001  \n\n\r\n\tcosmos1xyz\r\nnot-an-address\n   \n"
	got, err := ReadAddresses(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0xAbC0000000000000000000000000000000000001",
		"cosmos1xyz",
		"not-an-address",
	}, got)
}

func TestReadAddresses_OnlyBlank(t *testing.T) {
	t.Parallel()

	got, err := ReadAddresses(strings.NewReader("\n  \n\t\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAddressLoader_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wallets.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n\nc"), 0o600))

	var logged int
	l := NewAddressLoader(nil, func(string, ...any) { logged++ })
	got, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 1, logged)
}

func TestAddressLoader_Stdin(t *testing.T) {
	t.Parallel()

	l := NewAddressLoader(strings.NewReader("x\ny\n"), nil)
	got, err := l.Load(StdinPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestAddressLoader_MissingFile(t *testing.T) {
	t.Parallel()

	l := NewAddressLoader(nil, nil)
	_, err := l.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	_, err = l.Load("")
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, Normalize([]string{" a ", "", "\t", "b"}))
	assert.Empty(t, Normalize(nil))
}
