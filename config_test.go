package cvboot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParamsPartial(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		contents string
	}{
		{"toml", "boot.toml", "bootLength = 150.0\nnRibs = 6\n"},
		{"yaml", "boot.yaml", "bootLength: 150\nnRibs: 6\n"},
		{"yml", "boot.yml", "bootLength: 150\nnRibs: 6\n"},
		{"json", "boot.json", `{"bootLength": 150, "nRibs": 6}`},
	}

	want := DefaultParams()
	want.BootLength = 150
	want.NRibs = 6

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := LoadParams(writeFile(t, tc.file, tc.contents))
			require.NoError(t, err)
			assert.Equal(t, want, p)
		})
	}
}

func TestLoadParamsErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadParams(writeFile(t, "boot.ini", "bootLength=1"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadParams(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadParams(writeFile(t, "boot.json", `{"bootLength": `))
		assert.Error(t, err)
	})
}

func TestSaveParamsRoundTrip(t *testing.T) {
	p := DefaultParams()
	p.CupD = 101.5
	p.ShoulderWidth = 4.5

	for _, name := range []string{"boot.toml", "boot.yaml", "boot.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveParams(path, p))

			got, err := LoadParams(path)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	}
}

func TestMarshalParamsUsesFieldNames(t *testing.T) {
	data, err := MarshalParams("boot.yaml", DefaultParams())
	require.NoError(t, err)
	assert.Contains(t, string(data), "wallThickness: 3.5")

	_, err = MarshalParams("boot.txt", DefaultParams())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
