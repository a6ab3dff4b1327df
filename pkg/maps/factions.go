package maps

import (
	"slices"
	"strings"
)

// Holdings are the bases and units owned by one player slot.
type Holdings struct {
	Bases []Position
	Units []FactionUnit
}

// Partition holds each slot's holdings at index slot-1.
// A nil entry means the slot owns nothing.
type Partition [SlotCount]*Holdings

// Get returns the holdings for a color, or nil if it owns nothing.
func (p *Partition) Get(c Color) *Holdings {
	slot := ColorSlot(c)
	if slot == 0 {
		return nil
	}
	return p[slot-1]
}

// Colors returns the colors that own at least one base or unit, in slot order.
func (p *Partition) Colors() []Color {
	var colors []Color
	for i, h := range p {
		if h != nil {
			colors = append(colors, palette[i])
		}
	}
	return colors
}

// holdings returns the entry for slot, creating it on first use.
func (p *Partition) holdings(slot int) *Holdings {
	if p[slot-1] == nil {
		p[slot-1] = &Holdings{Bases: []Position{}}
	}
	return p[slot-1]
}

// PartitionFactions groups owned bases and units by player slot.
// Unowned entries (player 0) are skipped.
func PartitionFactions(bases []RawBase, units []RawUnit) (Partition, error) {
	var p Partition

	for i, b := range bases {
		if b.Player <= 0 {
			continue
		}
		if _, ok := SlotColor(b.Player); !ok {
			return Partition{}, &PartitionError{Kind: "base", Index: i, Slot: b.Player}
		}
		h := p.holdings(b.Player)
		h.Bases = append(h.Bases, Position{Q: b.X, R: b.Y})
	}

	for i, u := range units {
		if u.Player <= 0 {
			continue
		}
		if _, ok := SlotColor(u.Player); !ok {
			return Partition{}, &PartitionError{Kind: "unit", Index: i, Slot: u.Player}
		}
		h := p.holdings(u.Player)
		h.Units = append(h.Units, FactionUnit{Q: u.X, R: u.Y, UnitType: strings.ToLower(u.UnitType)})
	}

	for _, h := range p {
		if h == nil {
			continue
		}
		slices.SortStableFunc(h.Bases, func(a, b Position) int {
			return compareQR(a.Q, a.R, b.Q, b.R)
		})
		slices.SortStableFunc(h.Units, func(a, b FactionUnit) int {
			return compareQR(a.Q, a.R, b.Q, b.R)
		})
	}

	return p, nil
}

// AssembleFactions builds the faction list in slot order. Every faction
// starts with the same credits; the lowest slot is the human player and
// all others are AI.
func AssembleFactions(p Partition, credits int) []Faction {
	factions := make([]Faction, 0, SlotCount)
	for _, c := range p.Colors() {
		h := p.Get(c)
		f := Faction{
			Color:   c,
			Credits: credits,
			AI:      len(factions) > 0,
			Bases:   h.Bases,
		}
		if len(h.Units) > 0 {
			f.Units = h.Units
		}
		factions = append(factions, f)
	}
	return factions
}
