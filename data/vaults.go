package data

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
)

// VaultKind tags what a template is for. Lesser/greater/themed vaults
// are stamped into ordinary dungeon levels; the remaining kinds build
// whole special levels or town rows.
type VaultKind string

const (
	KindLesser     VaultKind = "lesser"
	KindGreater    VaultKind = "greater"
	KindThemed     VaultKind = "themed"
	KindSanctum    VaultKind = "sanctum"
	KindFolly      VaultKind = "folly"
	KindTown       VaultKind = "town"
	KindWilderness VaultKind = "wilderness"
	KindArena      VaultKind = "arena"
	KindQuest      VaultKind = "quest"
	KindStore      VaultKind = "store"
	KindDream      VaultKind = "dream"
)

// Protected reports whether cells stamped from this kind get the vault
// flag. Town and wilderness templates stay open to tunneling and
// teleport.
func (k VaultKind) Protected() bool {
	return k != KindTown && k != KindWilderness
}

// Vault is a hand-authored template: two run-length-encoded layers
// covering Width x Height cells row-major, a rating bonus, a depth gate,
// and a fixed monster-slot table indexed by digit symbols in the spawn
// layer.
type Vault struct {
	Name     string    `json:"name"`
	Kind     VaultKind `json:"kind"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Rating   int       `json:"rating"`
	MinDepth int       `json:"minDepth"`

	// Encoded layers: sequences of (symbol, count) byte pairs
	Terrain []byte `json:"-"`
	Spawns  []byte `json:"-"`

	// Monster-slot table; entries are spawner template ids
	Monsters [10]string `json:"monsters"`
}

// vaultFile is the JSON authoring form: layers as rows of text, encoded
// on load.
type vaultFile struct {
	Name     string     `json:"name"`
	Kind     VaultKind  `json:"kind"`
	Rating   int        `json:"rating"`
	MinDepth int        `json:"minDepth"`
	Rows     []string   `json:"rows"`
	Spawns   []string   `json:"spawns"`
	Monsters [10]string `json:"monsters"`
}

// EncodeRLE packs a row-major symbol sequence into (symbol, count)
// pairs. Runs longer than 255 are split.
func EncodeRLE(symbols []byte) []byte {
	var out []byte
	for i := 0; i < len(symbols); {
		sym := symbols[i]
		run := 1
		for i+run < len(symbols) && symbols[i+run] == sym && run < 255 {
			run++
		}
		out = append(out, sym, byte(run))
		i += run
	}
	return out
}

// DecodeRLE expands (symbol, count) pairs back into a flat symbol
// sequence of the expected length.
func DecodeRLE(encoded []byte, want int) ([]byte, error) {
	if len(encoded)%2 != 0 {
		return nil, fmt.Errorf("truncated run-length data: %d bytes", len(encoded))
	}
	out := make([]byte, 0, want)
	for i := 0; i < len(encoded); i += 2 {
		sym, run := encoded[i], int(encoded[i+1])
		for j := 0; j < run; j++ {
			out = append(out, sym)
		}
	}
	if len(out) != want {
		return nil, fmt.Errorf("run-length data covers %d cells, want %d", len(out), want)
	}
	return out, nil
}

// RLEWalker consumes an encoded layer one symbol at a time, advancing to
// the next (symbol, count) pair when the current run is spent.
type RLEWalker struct {
	data  []byte
	pos   int
	sym   byte
	count int
}

// NewRLEWalker starts a walker at the beginning of an encoded layer.
func NewRLEWalker(data []byte) *RLEWalker {
	return &RLEWalker{data: data}
}

// Next returns the next symbol, or ' ' once the layer is exhausted.
func (w *RLEWalker) Next() byte {
	for w.count == 0 {
		if w.pos+1 >= len(w.data) {
			return ' '
		}
		w.sym = w.data[w.pos]
		w.count = int(w.data[w.pos+1])
		w.pos += 2
	}
	w.count--
	return w.sym
}

// NewVault builds a vault from text rows, encoding both layers. The
// spawn rows may be nil for a terrain-only template.
func NewVault(name string, kind VaultKind, rating, minDepth int, rows, spawnRows []string, monsters [10]string) (*Vault, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("vault %q has no rows", name)
	}
	width := len(rows[0])
	var terrain, spawns []byte
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("vault %q row %d is %d wide, want %d", name, i, len(row), width)
		}
		terrain = append(terrain, row...)
	}
	if spawnRows != nil {
		if len(spawnRows) != len(rows) {
			return nil, fmt.Errorf("vault %q has %d spawn rows, want %d", name, len(spawnRows), len(rows))
		}
		for i, row := range spawnRows {
			if len(row) != width {
				return nil, fmt.Errorf("vault %q spawn row %d is %d wide, want %d", name, i, len(row), width)
			}
			spawns = append(spawns, row...)
		}
	}
	v := &Vault{
		Name:     name,
		Kind:     kind,
		Width:    width,
		Height:   len(rows),
		Rating:   rating,
		MinDepth: minDepth,
		Terrain:  EncodeRLE(terrain),
		Monsters: monsters,
	}
	if spawns != nil {
		v.Spawns = EncodeRLE(spawns)
	}
	return v, nil
}

// VaultManager holds every loaded template, grouped by kind.
type VaultManager struct {
	Vaults []*Vault
}

// NewVaultManager creates a manager seeded with the built-in template
// set.
func NewVaultManager() *VaultManager {
	m := &VaultManager{}
	for _, v := range builtinVaults() {
		m.Vaults = append(m.Vaults, v)
	}
	return m
}

// ByKind returns the templates of one kind whose depth gate passes.
func (m *VaultManager) ByKind(kind VaultKind, depth int) []*Vault {
	var out []*Vault
	for _, v := range m.Vaults {
		if v.Kind == kind && depth >= v.MinDepth {
			out = append(out, v)
		}
	}
	return out
}

// LoadVaultsFromDirectory loads all JSON vault files from a directory,
// adding them over the built-in set.
func (m *VaultManager) LoadVaultsFromDirectory(dirPath string) error {
	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read vault directory: %w", err)
	}
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadVaultFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load vault from %s: %w", file.Name(), err)
		}
	}
	return nil
}

// LoadVaultFromFile loads a single vault template from a JSON file.
func (m *VaultManager) LoadVaultFromFile(filePath string) error {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return err
	}
	var vf vaultFile
	if err := json.Unmarshal(raw, &vf); err != nil {
		return err
	}
	if vf.Name == "" {
		return fmt.Errorf("vault name cannot be empty: %s", filePath)
	}
	var spawnRows []string
	if len(vf.Spawns) > 0 {
		spawnRows = vf.Spawns
	}
	v, err := NewVault(vf.Name, vf.Kind, vf.Rating, vf.MinDepth, vf.Rows, spawnRows, vf.Monsters)
	if err != nil {
		return err
	}
	m.Vaults = append(m.Vaults, v)
	return nil
}
