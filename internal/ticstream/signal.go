package ticstream

// Button byte layout: byte 3 of each player's slice holds the buttons.
// With the special bit set, the low bits select a special action.
const (
	buttonOffset = 3
	specialMask  = 0x83
	pauseSignal  = 0x81
	saveSignal   = 0x82
)

// PauseSignals counts the players pressing pause in rec. More than one
// player can press pause in the same tic.
func PauseSignals(rec []byte, width int) int {
	if width <= 0 {
		return 0
	}
	n := 0
	for i := buttonOffset; i < len(rec); i += width {
		if rec[i]&specialMask == pauseSignal {
			n++
		}
	}
	return n
}

// HasSave reports whether any player saves the game in rec.
func HasSave(rec []byte, width int) bool {
	if width <= 0 {
		return false
	}
	for i := buttonOffset; i < len(rec); i += width {
		if rec[i]&specialMask == saveSignal {
			return true
		}
	}
	return false
}
