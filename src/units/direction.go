package units

import "strings"

// Shorthand abbreviates the four cardinal direction names to a single letter.
// Any other direction, including intercardinal names, is returned unchanged.
func Shorthand(direction string) string {
	switch strings.ToLower(direction) {
	case "north":
		return "N"
	case "south":
		return "S"
	case "east":
		return "E"
	case "west":
		return "W"
	}
	return direction
}
