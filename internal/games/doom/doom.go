// Package doom registers the Doom and Doom II recording variant.
//
// Both games share one tic layout, so a single variant covers them. The
// header alone cannot always tell them apart: a map above 9 is a Doom II
// recording, an episode above 1 is a Doom recording, and episode 1 with a
// low map number could be either.
package doom

import (
	"github.com/vovakirdan/lmpedit/internal/registry"
)

// ID is the registry identifier of this variant.
const ID = "doom"

// RecordWidth is the size in bytes of one player's ticcmd.
const RecordWidth = 4

var skills = [...]string{
	"I'm too young to die",
	"Hey, not too rough",
	"Hurt me plenty",
	"Ultra-Violence",
	"Nightmare!",
}

// Doom II reports itself as episode 1.
const commercialEpisode = "Hell on Earth"

var episodes = [...]string{
	"Knee-Deep in the Dead",
	"The Shores of Hell",
	"Inferno",
	"Thy Flesh Consumed",
}

var levels = [4][9]string{
	{"Hangar", "Nuclear Plant", "Toxin Refinery",
		"Command Control", "Phobos Lab", "Central Processing",
		"Computer Station", "Phobos Anomaly", "Military Base"},
	{"Deimos Anomaly", "Containment Area", "Refinery",
		"Deimos Lab", "Command Center", "Halls of the Damned",
		"Spawning Vats", "Tower of Babel", "Fortress of Mystery"},
	{"Hell Keep", "Slough of Despair", "Pandemonium",
		"House of Pain", "Unholy Cathedral", "Mt. Erebus",
		"Limbo", "Dis", "Warrens"},
	{"Hell Beneath", "Perfect Hatred", "Sever The Wicked",
		"Unruly Evil", "They Will Repent", "Against Thee Wickedly",
		"And Hell Followed", "Unto The Cruel", "Fear"},
}

var commercialLevels = [32]string{
	"Entryway", "Underhalls", "The Gantlet",
	"The Focus", "The Waste Tunnels", "The Crusher",
	"Dead Simple", "Tricks and Traps", "The Pit",
	"Refueling Base", "'O' of Destruction", "The Factory",
	"Downtown", "The Inmost Dens", "Industrial Zone",
	"Suburbs", "Tenements", "The Courtyard",
	"The Citadel", "Gotcha!", "Nirvana",
	"The Catacombs", "Barrels O' Fun", "The Chasm",
	"Bloodfalls", "The Abandoned Mines", "Monster Condo",
	"The Spirit World", "The Living End", "Icon of Sin",
	"Wolfenstein", "Grosse",
}

func init() {
	registry.Register(Variant{})
}

// Variant implements registry.Variant for Doom and Doom II.
type Variant struct{}

func (Variant) ID() string       { return ID }
func (Variant) Title() string    { return "Doom / Doom II" }
func (Variant) RecordWidth() int { return RecordWidth }

// MaxEpisode returns 4 for modern headers (The Ultimate Doom) and 3 for
// legacy ones, which predate the fourth episode.
func (Variant) MaxEpisode(legacy bool) int {
	if legacy {
		return 3
	}
	return 4
}

func (Variant) SkillName(skill int) string {
	if skill < 0 || skill >= len(skills) {
		return ""
	}
	return skills[skill]
}

func (Variant) EpisodeName(episode, mapNum int, legacy bool) string {
	switch {
	case !legacy && mapNum > 9:
		return commercialEpisode
	case !legacy && episode < 2:
		return commercialEpisode + " / " + episodeName(1)
	default:
		return episodeName(episode)
	}
}

func (Variant) MapName(episode, mapNum int, legacy bool) string {
	switch {
	case !legacy && mapNum > 9:
		return commercialLevel(mapNum)
	case !legacy && episode < 2:
		return commercialLevel(mapNum) + " / " + level(1, mapNum)
	default:
		return level(episode, mapNum)
	}
}

func episodeName(episode int) string {
	if episode < 1 || episode > len(episodes) {
		return ""
	}
	return episodes[episode-1]
}

func level(episode, mapNum int) string {
	if episode < 1 || episode > len(levels) || mapNum < 1 || mapNum > 9 {
		return ""
	}
	return levels[episode-1][mapNum-1]
}

func commercialLevel(mapNum int) string {
	if mapNum < 1 || mapNum > len(commercialLevels) {
		return ""
	}
	return commercialLevels[mapNum-1]
}
