package maps

// Color is a faction color in the destination format.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorPink   Color = "pink"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
)

// SlotCount is the number of owning player slots in the source format.
const SlotCount = 6

// palette maps slot n to palette[n-1].
var palette = [SlotCount]Color{
	ColorRed,
	ColorBlue,
	ColorYellow,
	ColorPink,
	ColorGreen,
	ColorOrange,
}

// SlotColor converts a player slot to its color.
// Returns false for slots outside 1..6.
func SlotColor(slot int) (Color, bool) {
	if slot < 1 || slot > SlotCount {
		return "", false
	}
	return palette[slot-1], true
}

// ColorSlot converts a color back to its player slot.
// Returns 0 for unknown colors.
func ColorSlot(c Color) int {
	for i, pc := range palette {
		if pc == c {
			return i + 1
		}
	}
	return 0
}
