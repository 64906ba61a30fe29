package spawners

import (
	"stonehollow/data"
	"stonehollow/rng"
)

// pickObject rolls a weighted selection among object templates fitting
// the depth and quality filters, optionally restricted to one display
// glyph. Good placements exclude plain items; great placements exclude
// everything but the rare tier.
func (s *TemplateSpawner) pickObject(depth int, good, great bool, glyph byte) *data.ObjectTemplate {
	total := 0
	var cands []*data.ObjectTemplate
	var weights []int
	for _, t := range s.objectList {
		if t.Depth > depth+6 {
			continue
		}
		if great && !t.Great {
			continue
		}
		if good && !t.Good && !t.Great {
			continue
		}
		if glyph != 0 && t.GlyphByte() != glyph {
			continue
		}
		w := t.SpawnWeight
		if w < 1 {
			w = 1
		}
		cands = append(cands, t)
		weights = append(weights, w)
		total += w
	}
	if total == 0 {
		return nil
	}
	roll := s.rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return cands[i]
		}
	}
	return cands[len(cands)-1]
}

// LootTable defines a fixed drop table, for scripted chests and bosses
// rather than depth-scaled floor loot.
type LootTable struct {
	Entries []LootTableEntry
}

// LootTableEntry is a single weighted entry.
type LootTableEntry struct {
	ObjectTemplateID string
	Weight           int
	MinCount         int
	MaxCount         int
}

// NewLootTable creates a loot table.
func NewLootTable(entries []LootTableEntry) *LootTable {
	return &LootTable{Entries: entries}
}

// Roll returns the template ids produced by one pass over the table.
// Each entry triggers independently in proportion to its weight.
func (lt *LootTable) Roll(r *rng.Stream) []string {
	totalWeight := 0
	for _, entry := range lt.Entries {
		totalWeight += entry.Weight
	}
	if totalWeight == 0 {
		return nil
	}

	var ids []string
	for _, entry := range lt.Entries {
		if r.Intn(totalWeight) >= entry.Weight {
			continue
		}
		count := entry.MinCount
		if entry.MaxCount > entry.MinCount {
			count += r.Intn(entry.MaxCount - entry.MinCount + 1)
		}
		for i := 0; i < count; i++ {
			ids = append(ids, entry.ObjectTemplateID)
		}
	}
	return ids
}
