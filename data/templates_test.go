package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTemplatesCoverVaultSlots(t *testing.T) {
	m := NewTemplateManager()

	// Every monster id named by a built-in vault slot table must exist
	vaults := NewVaultManager()
	for _, v := range vaults.Vaults {
		for slot, id := range v.Monsters {
			if id == "" {
				continue
			}
			_, ok := m.Monster(id)
			assert.True(t, ok, "vault %q slot %d references unknown monster %q", v.Name, slot, id)
		}
	}
}

func TestMonsterTemplateHelpers(t *testing.T) {
	m := NewTemplateManager()
	orc, ok := m.Monster("orc")
	require.True(t, ok)
	assert.True(t, orc.HasTheme("goblinoid"))
	assert.False(t, orc.HasTheme("undead"))
	assert.Equal(t, byte('o'), orc.GlyphByte())

	empty := &MonsterTemplate{}
	assert.Equal(t, byte(0), empty.GlyphByte())
}

func TestLoadMonsterFromFileOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orc.json")
	blob := `{"id": "orc", "name": "pale orc", "glyph": "o", "depth": 3, "spawnWeight": 5}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

	m := NewTemplateManager()
	require.NoError(t, m.LoadMonstersFromDirectory(dir))

	orc, ok := m.Monster("orc")
	require.True(t, ok)
	assert.Equal(t, "pale orc", orc.Name)
	assert.Equal(t, 3, orc.Depth)
}

func TestLoadMonsterRejectsEmptyID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "nameless"}`), 0o644))

	m := NewTemplateManager()
	assert.Error(t, m.LoadMonstersFromDirectory(dir))
}

func TestObjectTemplatesHaveGlyphClasses(t *testing.T) {
	m := NewTemplateManager()
	required := []byte{'!', '?', '|', '[', '=', '"'}
	for _, glyph := range required {
		found := false
		for _, t2 := range m.Objects {
			if t2.GlyphByte() == glyph {
				found = true
				break
			}
		}
		assert.True(t, found, "no object template with glyph %q", string(glyph))
	}
}
