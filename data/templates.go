package data

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
)

// MonsterTemplate describes one monster kind available to the spawner.
type MonsterTemplate struct {
	ID   string `json:"id"`   // Unique identifier, referenced by vault slot tables
	Name string `json:"name"` // Display name

	Glyph string `json:"glyph"` // Display character, one byte
	Color string `json:"color"` // Color in hex format (e.g. "#00FF00")

	Depth       int      `json:"depth"`       // Native depth; spawns near and below it
	SpawnWeight int      `json:"spawnWeight"` // Relative chance of spawning (higher = more common)
	Themes      []string `json:"themes"`      // Theme tags for nests and pits
	GroupMax    int      `json:"groupMax"`    // Largest group it appears in, 1 for solitary

	Health  int `json:"health"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	XP      int `json:"xp"` // XP awarded when killed
}

// HasTheme reports whether the template carries a theme tag.
func (t *MonsterTemplate) HasTheme(theme string) bool {
	for _, th := range t.Themes {
		if th == theme {
			return true
		}
	}
	return false
}

// GlyphByte returns the display character, 0 when unset.
func (t *MonsterTemplate) GlyphByte() byte {
	if t.Glyph == "" {
		return 0
	}
	return t.Glyph[0]
}

// ObjectTemplate describes one object kind available to the spawner.
type ObjectTemplate struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Glyph string `json:"glyph"`
	Color string `json:"color"`

	Depth       int  `json:"depth"`
	SpawnWeight int  `json:"spawnWeight"`
	Good        bool `json:"good"`  // qualifies for good-item placements
	Great       bool `json:"great"` // qualifies for great-item placements
}

// GlyphByte returns the display character, 0 when unset.
func (t *ObjectTemplate) GlyphByte() byte {
	if t.Glyph == "" {
		return 0
	}
	return t.Glyph[0]
}

// TemplateManager holds all monster and object templates.
type TemplateManager struct {
	Monsters map[string]*MonsterTemplate
	Objects  map[string]*ObjectTemplate
}

// NewTemplateManager creates a manager preloaded with the built-in
// template set.
func NewTemplateManager() *TemplateManager {
	m := &TemplateManager{
		Monsters: make(map[string]*MonsterTemplate),
		Objects:  make(map[string]*ObjectTemplate),
	}
	for _, t := range builtinMonsters {
		m.Monsters[t.ID] = t
	}
	for _, t := range builtinObjects {
		m.Objects[t.ID] = t
	}
	return m
}

// Monster looks up a monster template by id.
func (m *TemplateManager) Monster(id string) (*MonsterTemplate, bool) {
	t, ok := m.Monsters[id]
	return t, ok
}

// Object looks up an object template by id.
func (m *TemplateManager) Object(id string) (*ObjectTemplate, bool) {
	t, ok := m.Objects[id]
	return t, ok
}

// MonsterList returns the monster templates in id order. Weighted
// selection iterates this so a fixed seed replays the same picks.
func (m *TemplateManager) MonsterList() []*MonsterTemplate {
	list := make([]*MonsterTemplate, 0, len(m.Monsters))
	for _, t := range m.Monsters {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// ObjectList returns the object templates in id order.
func (m *TemplateManager) ObjectList() []*ObjectTemplate {
	list := make([]*ObjectTemplate, 0, len(m.Objects))
	for _, t := range m.Objects {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// LoadMonstersFromDirectory loads all JSON monster template files from a
// directory, overriding built-ins with matching ids.
func (m *TemplateManager) LoadMonstersFromDirectory(dirPath string) error {
	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read monster template directory: %w", err)
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadMonsterFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load monster template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadObjectsFromDirectory loads all JSON object template files from a
// directory.
func (m *TemplateManager) LoadObjectsFromDirectory(dirPath string) error {
	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read object template directory: %w", err)
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadObjectFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load object template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadMonsterFromFile loads a single monster template from a JSON file.
func (m *TemplateManager) LoadMonsterFromFile(filePath string) error {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template MonsterTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return err
	}

	if template.ID == "" {
		return fmt.Errorf("template ID cannot be empty: %s", filePath)
	}

	m.Monsters[template.ID] = &template
	return nil
}

// LoadObjectFromFile loads a single object template from a JSON file.
func (m *TemplateManager) LoadObjectFromFile(filePath string) error {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template ObjectTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return err
	}

	if template.ID == "" {
		return fmt.Errorf("template ID cannot be empty: %s", filePath)
	}

	m.Objects[template.ID] = &template
	return nil
}

// builtinMonsters is the stock bestiary. Vault slot tables reference
// these ids directly, so removing one breaks the vault that names it.
var builtinMonsters = []*MonsterTemplate{
	{ID: "rat", Name: "giant rat", Glyph: "r", Color: "#AA7744", Depth: 1,
		SpawnWeight: 120, Themes: []string{"vermin"}, GroupMax: 6,
		Health: 4, Attack: 2, Defense: 0, XP: 1},
	{ID: "bat", Name: "cave bat", Glyph: "b", Color: "#776655", Depth: 1,
		SpawnWeight: 100, Themes: []string{"vermin"}, GroupMax: 8,
		Health: 3, Attack: 1, Defense: 1, XP: 1},
	{ID: "beetle", Name: "boring beetle", Glyph: "K", Color: "#446622", Depth: 4,
		SpawnWeight: 70, Themes: []string{"vermin"}, GroupMax: 4,
		Health: 10, Attack: 4, Defense: 4, XP: 4},
	{ID: "kobold", Name: "kobold", Glyph: "k", Color: "#88AA44", Depth: 2,
		SpawnWeight: 100, Themes: []string{"goblinoid"}, GroupMax: 5,
		Health: 6, Attack: 3, Defense: 1, XP: 2},
	{ID: "goblin", Name: "goblin", Glyph: "k", Color: "#66AA33", Depth: 4,
		SpawnWeight: 90, Themes: []string{"goblinoid"}, GroupMax: 6,
		Health: 8, Attack: 4, Defense: 2, XP: 3},
	{ID: "orc", Name: "orc", Glyph: "o", Color: "#558822", Depth: 6,
		SpawnWeight: 90, Themes: []string{"goblinoid"}, GroupMax: 6,
		Health: 12, Attack: 6, Defense: 3, XP: 6},
	{ID: "orc-warrior", Name: "orc warrior", Glyph: "o", Color: "#447711", Depth: 10,
		SpawnWeight: 60, Themes: []string{"goblinoid"}, GroupMax: 4,
		Health: 20, Attack: 9, Defense: 5, XP: 12},
	{ID: "ogre", Name: "ogre", Glyph: "O", Color: "#997744", Depth: 14,
		SpawnWeight: 50, Themes: []string{"goblinoid"}, GroupMax: 2,
		Health: 36, Attack: 14, Defense: 6, XP: 25},
	{ID: "ogre-chief", Name: "ogre chieftain", Glyph: "O", Color: "#BB8833", Depth: 22,
		SpawnWeight: 20, Themes: []string{"goblinoid"}, GroupMax: 1,
		Health: 60, Attack: 20, Defense: 9, XP: 60},
	{ID: "troll", Name: "cave troll", Glyph: "T", Color: "#557755", Depth: 18,
		SpawnWeight: 40, GroupMax: 2,
		Health: 50, Attack: 16, Defense: 7, XP: 45},
	{ID: "skeleton", Name: "skeleton", Glyph: "s", Color: "#CCCCBB", Depth: 6,
		SpawnWeight: 80, Themes: []string{"undead"}, GroupMax: 4,
		Health: 10, Attack: 5, Defense: 4, XP: 5},
	{ID: "zombie", Name: "shambling zombie", Glyph: "z", Color: "#668855", Depth: 8,
		SpawnWeight: 80, Themes: []string{"undead"}, GroupMax: 5,
		Health: 16, Attack: 6, Defense: 2, XP: 7},
	{ID: "wraith", Name: "wraith", Glyph: "W", Color: "#8888CC", Depth: 20,
		SpawnWeight: 30, Themes: []string{"undead"}, GroupMax: 2,
		Health: 30, Attack: 12, Defense: 8, XP: 40},
	{ID: "giant-spider", Name: "giant spider", Glyph: "S", Color: "#664422", Depth: 12,
		SpawnWeight: 50, Themes: []string{"spider"}, GroupMax: 4,
		Health: 22, Attack: 10, Defense: 5, XP: 18},
	{ID: "phase-spider", Name: "phase spider", Glyph: "S", Color: "#AA66CC", Depth: 24,
		SpawnWeight: 20, Themes: []string{"spider"}, GroupMax: 2,
		Health: 34, Attack: 14, Defense: 9, XP: 55},
	{ID: "imp", Name: "imp", Glyph: "u", Color: "#CC4444", Depth: 14,
		SpawnWeight: 40, Themes: []string{"demon"}, GroupMax: 3,
		Health: 18, Attack: 8, Defense: 6, XP: 20},
	{ID: "pit-fiend", Name: "pit fiend", Glyph: "U", Color: "#992222", Depth: 45,
		SpawnWeight: 8, Themes: []string{"demon"}, GroupMax: 1,
		Health: 120, Attack: 35, Defense: 18, XP: 400},
	{ID: "young-dragon", Name: "young dragon", Glyph: "d", Color: "#CC8822", Depth: 28,
		SpawnWeight: 15, Themes: []string{"dragon"}, GroupMax: 1,
		Health: 80, Attack: 24, Defense: 14, XP: 180},
	{ID: "elder-dragon", Name: "elder dragon", Glyph: "D", Color: "#DDAA11", Depth: 48,
		SpawnWeight: 5, Themes: []string{"dragon"}, GroupMax: 1,
		Health: 200, Attack: 45, Defense: 25, XP: 900},
	{ID: "temple-guardian", Name: "temple guardian", Glyph: "p", Color: "#DDDDAA", Depth: 32,
		SpawnWeight: 10, GroupMax: 2,
		Health: 70, Attack: 22, Defense: 16, XP: 150},
	{ID: "high-priest", Name: "high priest", Glyph: "p", Color: "#EEEECC", Depth: 38,
		SpawnWeight: 8, GroupMax: 1,
		Health: 90, Attack: 26, Defense: 14, XP: 250},
	{ID: "mad-collector", Name: "mad collector", Glyph: "p", Color: "#CC99EE", Depth: 26,
		SpawnWeight: 8, GroupMax: 1,
		Health: 55, Attack: 18, Defense: 10, XP: 110},
	{ID: "arena-champion", Name: "arena champion", Glyph: "p", Color: "#EE8844", Depth: 30,
		SpawnWeight: 8, GroupMax: 1,
		Health: 85, Attack: 28, Defense: 15, XP: 220},
	{ID: "villager", Name: "villager", Glyph: "p", Color: "#BBAA88", Depth: 0,
		SpawnWeight: 100, Themes: []string{"townsfolk"}, GroupMax: 1,
		Health: 8, Attack: 2, Defense: 1, XP: 0},
	{ID: "merchant", Name: "wandering merchant", Glyph: "p", Color: "#DDCC66", Depth: 0,
		SpawnWeight: 40, Themes: []string{"townsfolk"}, GroupMax: 1,
		Health: 12, Attack: 3, Defense: 2, XP: 0},
}

// builtinObjects is the stock object set, one entry per display glyph
// class plus depth-tiered variants.
var builtinObjects = []*ObjectTemplate{
	{ID: "potion-healing", Name: "potion of healing", Glyph: "!", Color: "#DD4466",
		Depth: 1, SpawnWeight: 100},
	{ID: "potion-restoration", Name: "potion of restoration", Glyph: "!", Color: "#4466DD",
		Depth: 20, SpawnWeight: 40, Good: true},
	{ID: "scroll-recall", Name: "scroll of recall", Glyph: "?", Color: "#EEEEDD",
		Depth: 5, SpawnWeight: 80},
	{ID: "scroll-banishment", Name: "scroll of banishment", Glyph: "?", Color: "#DDDDFF",
		Depth: 30, SpawnWeight: 20, Good: true},
	{ID: "short-sword", Name: "short sword", Glyph: "|", Color: "#BBBBCC",
		Depth: 2, SpawnWeight: 90},
	{ID: "rune-blade", Name: "rune blade", Glyph: "|", Color: "#88CCEE",
		Depth: 35, SpawnWeight: 10, Good: true, Great: true},
	{ID: "spear", Name: "spear", Glyph: "/", Color: "#AA9977",
		Depth: 3, SpawnWeight: 70},
	{ID: "war-hammer", Name: "war hammer", Glyph: "\\", Color: "#999999",
		Depth: 8, SpawnWeight: 60},
	{ID: "leather-armor", Name: "leather armor", Glyph: "(", Color: "#885522",
		Depth: 2, SpawnWeight: 80},
	{ID: "chain-mail", Name: "chain mail", Glyph: "[", Color: "#AAAAAA",
		Depth: 10, SpawnWeight: 60},
	{ID: "adamant-plate", Name: "adamant plate", Glyph: "[", Color: "#66EEBB",
		Depth: 40, SpawnWeight: 8, Good: true, Great: true},
	{ID: "tower-shield", Name: "tower shield", Glyph: "]", Color: "#8899AA",
		Depth: 15, SpawnWeight: 40},
	{ID: "ring-protection", Name: "ring of protection", Glyph: "=", Color: "#EEDD44",
		Depth: 18, SpawnWeight: 30, Good: true},
	{ID: "amulet-warding", Name: "amulet of warding", Glyph: "\"", Color: "#44DDEE",
		Depth: 22, SpawnWeight: 25, Good: true},
	{ID: "staff-light", Name: "staff of light", Glyph: "_", Color: "#EEEE88",
		Depth: 12, SpawnWeight: 35},
	{ID: "wand-digging", Name: "wand of digging", Glyph: "'", Color: "#BB8855",
		Depth: 16, SpawnWeight: 30},
	{ID: "lantern", Name: "brass lantern", Glyph: "~", Color: "#DDAA33",
		Depth: 1, SpawnWeight: 70},
	{ID: "harp", Name: "silver harp", Glyph: "{", Color: "#CCCCEE",
		Depth: 25, SpawnWeight: 12, Good: true},
	{ID: "gold-nugget", Name: "gold nugget", Glyph: "$", Color: "#FFDD00",
		Depth: 1, SpawnWeight: 50},
}
