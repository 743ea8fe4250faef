// Package heretic registers the Heretic recording variant.
// Heretic ticcmds carry two extra bytes (fly and inventory), so every
// player's slice of a tic is six bytes wide.
package heretic

import (
	"github.com/vovakirdan/lmpedit/internal/registry"
)

// ID is the registry identifier of this variant.
const ID = "heretic"

// RecordWidth is the size in bytes of one player's ticcmd.
const RecordWidth = 6

var skills = [...]string{
	"Thou Needeth A Wet-Nurse",
	"Yellowbellies-R-Us",
	"Bringest Them Oneth",
	"Thou Art Smite-Meister",
	"Black Plague On Thee!",
}

var episodes = [...]string{
	"City of the Damned",
	"Hell's Maw",
	"The Dome of D'Sparil",
	"The Ossuary",
	"The Stagnant Demesne",
}

var levels = [5][9]string{
	{"The Docks", "The Dungeons", "The Gatehouse",
		"The Guard Tower", "The Citadel", "The Cathedral",
		"The Crypts", "Hell's Maw", "The Graveyard"},
	{"The Crater", "The Lava Pits", "The River of Fire",
		"The Ice Grotto", "The Catacombs", "The Labyrinth",
		"The Great Hall", "The Portals of Chaos", "The Glacier"},
	{"The Storehouse", "The Cesspool", "The Confluence",
		"The Azure Fortress", "The Ophidian Lair", "The Halls of Fear",
		"The Chasm", "D'Sparil's Keep", "The Aquifer"},
	{"Catafalque", "Blockhouse", "Ambulatory",
		"Sepulcher", "Great Stair", "Halls of The Apostate",
		"Ramparts of Perdition", "Shattered Bridge", "Mausoleum"},
	{"Ochre Cliffs", "Rapids", "Quay",
		"Courtyard", "Hydratyr", "Colonnade",
		"Foetid Manse", "Field of Judgement", "Skein of D'Sparil"},
}

func init() {
	registry.Register(Variant{})
}

// Variant implements registry.Variant for Heretic.
type Variant struct{}

func (Variant) ID() string       { return ID }
func (Variant) Title() string    { return "Heretic" }
func (Variant) RecordWidth() int { return RecordWidth }

// MaxEpisode allows the two Shadow of the Serpent Riders episodes in
// modern headers.
func (Variant) MaxEpisode(legacy bool) int {
	if legacy {
		return 3
	}
	return 5
}

func (Variant) SkillName(skill int) string {
	if skill < 0 || skill >= len(skills) {
		return ""
	}
	return skills[skill]
}

func (Variant) EpisodeName(episode, _ int, _ bool) string {
	if episode < 1 || episode > len(episodes) {
		return ""
	}
	return episodes[episode-1]
}

func (Variant) MapName(episode, mapNum int, _ bool) string {
	if episode < 1 || episode > len(levels) || mapNum < 1 || mapNum > 9 {
		return ""
	}
	return levels[episode-1][mapNum-1]
}
