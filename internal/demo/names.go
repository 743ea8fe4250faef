package demo

import (
	"strings"
)

var playerNames = [MaxPlayers]string{"Green", "Indigo", "Brown", "Red"}

// PlayerName returns the color name of player slot i.
func PlayerName(i int) string {
	if i < 0 || i >= MaxPlayers {
		return "Unknown"
	}
	return playerNames[i]
}

// ActiveNames returns the comma separated names of the present players.
func (h Header) ActiveNames() string {
	names := make([]string, 0, MaxPlayers)
	for i := range h.Players {
		if h.Active(i) {
			names = append(names, PlayerName(i))
		}
	}
	return strings.Join(names, ", ")
}

// ModeName returns the play mode shown in reports. A cooperative
// recording with a single player is reported as "Single".
func (h Header) ModeName() string {
	if h.Mode == Cooperative && h.ActiveCount() == 1 {
		return "Single"
	}
	return h.Mode.String()
}
