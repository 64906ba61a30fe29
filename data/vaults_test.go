package data

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRLERoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte("%%%%%%%%"),
		[]byte("%......%"),
		[]byte("abcdefg"),
		[]byte("a"),
		bytes.Repeat([]byte{'#'}, 300), // runs longer than 255 must split
	}
	for _, in := range cases {
		enc := EncodeRLE(in)
		out, err := DecodeRLE(enc, len(in))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestDecodeRLEErrors(t *testing.T) {
	_, err := DecodeRLE([]byte{'a'}, 1)
	assert.Error(t, err)

	_, err = DecodeRLE([]byte{'a', 3}, 5)
	assert.Error(t, err)
}

func TestRLEWalker(t *testing.T) {
	enc := EncodeRLE([]byte("%%..%%"))
	w := NewRLEWalker(enc)
	got := make([]byte, 0, 6)
	for i := 0; i < 6; i++ {
		got = append(got, w.Next())
	}
	assert.Equal(t, []byte("%%..%%"), got)

	// Exhausted walker reads as blank
	assert.Equal(t, byte(' '), w.Next())
}

func TestNewVaultValidatesWidth(t *testing.T) {
	_, err := NewVault("bad", KindLesser, 10, 5, []string{"%%%", "%%"}, nil, [10]string{})
	assert.Error(t, err)

	_, err = NewVault("empty", KindLesser, 10, 5, nil, nil, [10]string{})
	assert.Error(t, err)

	_, err = NewVault("bad spawns", KindLesser, 10, 5,
		[]string{"%%%", "%%%"}, []string{"..."}, [10]string{})
	assert.Error(t, err)

	v, err := NewVault("good", KindLesser, 10, 5,
		[]string{"%%%", "%.%", "%%%"}, nil, [10]string{})
	require.NoError(t, err)
	assert.Equal(t, 3, v.Width)
	assert.Equal(t, 3, v.Height)
	assert.Nil(t, v.Spawns)
}

func TestProtected(t *testing.T) {
	assert.True(t, KindLesser.Protected())
	assert.True(t, KindGreater.Protected())
	assert.True(t, KindDream.Protected())
	assert.False(t, KindTown.Protected())
	assert.False(t, KindWilderness.Protected())
}

func TestBuiltinVaultsDecode(t *testing.T) {
	m := NewVaultManager()
	require.NotEmpty(t, m.Vaults)
	for _, v := range m.Vaults {
		terrain, err := DecodeRLE(v.Terrain, v.Width*v.Height)
		require.NoError(t, err, "vault %q terrain", v.Name)
		assert.Len(t, terrain, v.Width*v.Height)
		if v.Spawns != nil {
			spawns, err := DecodeRLE(v.Spawns, v.Width*v.Height)
			require.NoError(t, err, "vault %q spawns", v.Name)
			assert.Len(t, spawns, v.Width*v.Height)
		}
	}
}

func TestByKindDepthGate(t *testing.T) {
	m := &VaultManager{}
	shallow, err := NewVault("shallow", KindLesser, 10, 5, []string{"%%", "%%"}, nil, [10]string{})
	require.NoError(t, err)
	deep, err := NewVault("deep", KindLesser, 20, 30, []string{"%%", "%%"}, nil, [10]string{})
	require.NoError(t, err)
	m.Vaults = append(m.Vaults, shallow, deep)

	assert.Empty(t, m.ByKind(KindLesser, 3))
	assert.Len(t, m.ByKind(KindLesser, 10), 1)
	assert.Len(t, m.ByKind(KindLesser, 30), 2)
	assert.Empty(t, m.ByKind(KindGreater, 50))
}

func TestLoadVaultFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_vault.json")
	blob := `{
		"name": "test cell",
		"kind": "lesser",
		"rating": 15,
		"minDepth": 8,
		"rows": ["%%%%%", "%...%", "%%%%%"],
		"spawns": [".....", ".0.1.", "....."],
		"monsters": ["orc", "troll", "", "", "", "", "", "", "", ""]
	}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

	m := &VaultManager{}
	require.NoError(t, m.LoadVaultsFromDirectory(dir))
	require.Len(t, m.Vaults, 1)

	v := m.Vaults[0]
	assert.Equal(t, "test cell", v.Name)
	assert.Equal(t, KindLesser, v.Kind)
	assert.Equal(t, 5, v.Width)
	assert.Equal(t, 3, v.Height)
	assert.Equal(t, 15, v.Rating)
	assert.Equal(t, 8, v.MinDepth)
	assert.Equal(t, "orc", v.Monsters[0])
	assert.Equal(t, "troll", v.Monsters[1])

	terrain, err := DecodeRLE(v.Terrain, 15)
	require.NoError(t, err)
	assert.Equal(t, []byte("%%%%%%...%%%%%%"), terrain)
}

func TestLoadVaultBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": ""}`), 0o644))

	m := &VaultManager{}
	assert.Error(t, m.LoadVaultsFromDirectory(dir))
}
