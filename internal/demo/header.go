// Package demo decodes and validates LMP recording headers and derives the
// tic geometry of a recording.
//
// Two header layouts exist. Legacy recordings (engine 1.0 - 1.2) start with
// a 7 byte header:
//
//	0 skill, 1 episode, 2 map, 3-6 player present flags
//
// Modern recordings (engine 1.4 - 1.9) start with a 13 byte header:
//
//	0 version (100+x), 1 skill, 2 episode, 3 map, 4 play mode,
//	5 respawn, 6 fast, 7 nomonsters, 8 recording player,
//	9-12 player present flags
//
// The layout carries no tag. A first byte in the skill range [0,4] marks a
// legacy header; anything else is read as a modern version byte.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/lmpedit/internal/registry"
)

// Header sizes and the stream terminator.
const (
	LegacyHeaderSize = 7
	ModernHeaderSize = 13

	// Terminator ends the tic stream ("quit" byte).
	Terminator byte = 0x80

	// MaxPlayers is the number of player slots in a recording.
	MaxPlayers = 4
)

// Supported modern versions, 1.4 through 1.9.
const (
	MinVersion     = 4
	MaxVersion     = 9
	DefaultVersion = 9
)

// PlayMode is the multiplayer rule set of a recording.
type PlayMode uint8

const (
	Cooperative PlayMode = iota
	Deathmatch
	Altdeath
)

var playModeNames = [...]string{"Cooperative", "Original DeathMatch", "DeathMatch 2.0"}

func (m PlayMode) String() string {
	if int(m) < len(playModeNames) {
		return playModeNames[m]
	}
	return fmt.Sprintf("PlayMode(%d)", uint8(m))
}

// Header is the fixed-size prefix of a recording.
// Numeric fields hold the raw byte values so that Validate can report
// exactly what was read.
type Header struct {
	Legacy bool

	Version int // 100+x, zero for legacy headers
	Skill   int // 0-based
	Episode int
	Map     int
	Mode    PlayMode

	Respawn    bool
	Fast       bool
	NoMonsters bool

	// Recorder is the player whose viewpoint is recorded.
	// Legacy headers have no such byte; see ImpliedRecorder.
	Recorder int

	// Players holds the raw present flags; 1 means the slot is active.
	Players [MaxPlayers]int
}

// ReadHeader reads a header from r, leaving r positioned at the first tic.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [ModernHeaderSize]byte

	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return Header{}, readErr(err, ModernHeaderSize)
	}

	size := ModernHeaderSize
	if buf[0] <= 4 {
		size = LegacyHeaderSize
	}

	if _, err := io.ReadFull(r, buf[1:size]); err != nil {
		return Header{}, readErr(err, size)
	}

	return Decode(buf[:size])
}

func readErr(err error, size int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: file must have at least %d bytes", ErrTruncatedHeader, size)
	}
	return fmt.Errorf("demo: read header: %w", err)
}

// Decode parses a header from b. The layout is chosen by b[0] and b must
// hold at least that layout's size.
func Decode(b []byte) (Header, error) {
	if len(b) == 0 {
		return Header{}, fmt.Errorf("%w: file must have at least %d bytes", ErrTruncatedHeader, ModernHeaderSize)
	}

	if b[0] <= 4 {
		if len(b) < LegacyHeaderSize {
			return Header{}, fmt.Errorf("%w: file must have at least %d bytes", ErrTruncatedHeader, LegacyHeaderSize)
		}
		h := Header{
			Legacy:  true,
			Skill:   int(b[0]),
			Episode: int(b[1]),
			Map:     int(b[2]),
		}
		for i := range h.Players {
			h.Players[i] = int(b[3+i])
		}
		return h, nil
	}

	if len(b) < ModernHeaderSize {
		return Header{}, fmt.Errorf("%w: file must have at least %d bytes", ErrTruncatedHeader, ModernHeaderSize)
	}
	h := Header{
		Version:    int(b[0]),
		Skill:      int(b[1]),
		Episode:    int(b[2]),
		Map:        int(b[3]),
		Mode:       PlayMode(b[4]),
		Respawn:    b[5] != 0,
		Fast:       b[6] != 0,
		NoMonsters: b[7] != 0,
		Recorder:   int(b[8]),
	}
	for i := range h.Players {
		h.Players[i] = int(b[9+i])
	}
	return h, nil
}

// Size returns the encoded size of the header.
func (h Header) Size() int {
	if h.Legacy {
		return LegacyHeaderSize
	}
	return ModernHeaderSize
}

// MarshalBinary encodes the header in its own layout.
func (h Header) MarshalBinary() ([]byte, error) {
	if h.Legacy {
		b := []byte{byte(h.Skill), byte(h.Episode), byte(h.Map), 0, 0, 0, 0}
		for i, p := range h.Players {
			b[3+i] = byte(p)
		}
		return b, nil
	}

	b := []byte{
		byte(h.Version), byte(h.Skill), byte(h.Episode), byte(h.Map),
		byte(h.Mode), boolByte(h.Respawn), boolByte(h.Fast), boolByte(h.NoMonsters),
		byte(h.Recorder), 0, 0, 0, 0,
	}
	for i, p := range h.Players {
		b[9+i] = byte(p)
	}
	return b, nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// Active reports whether player slot i is present.
func (h Header) Active(i int) bool {
	return i >= 0 && i < MaxPlayers && h.Players[i] == 1
}

// ActiveCount returns the number of present players.
func (h Header) ActiveCount() int {
	n := 0
	for i := range h.Players {
		if h.Active(i) {
			n++
		}
	}
	return n
}

// ImpliedRecorder returns the recording player. Legacy headers do not
// store one, so the lowest active slot is used.
func (h Header) ImpliedRecorder() int {
	if !h.Legacy {
		return h.Recorder
	}
	for i := range h.Players {
		if h.Active(i) {
			return i
		}
	}
	return 0
}

// MinorVersion returns x for version 1.x, or 0 for legacy headers.
func (h Header) MinorVersion() int {
	if h.Legacy {
		return 0
	}
	return h.Version - 100
}

// Upgrade returns the modern header that replaces a legacy one.
// Skill, episode and map carry over, options are cleared and only the
// recording player stays active.
func (h Header) Upgrade(version int) Header {
	rec := h.ImpliedRecorder()
	up := Header{
		Version:  100 + version,
		Skill:    h.Skill,
		Episode:  h.Episode,
		Map:      h.Map,
		Mode:     Cooperative,
		Recorder: rec,
	}
	up.Players[rec] = 1
	return up
}

// Validate checks every field against its legal range and returns the
// first violation as a *FieldError. A nil variant uses Doom's ranges.
func (h Header) Validate(v registry.Variant) error {
	maxEpisode := 4
	if h.Legacy {
		maxEpisode = 3
	}
	if v != nil {
		maxEpisode = v.MaxEpisode(h.Legacy)
	}

	if h.Legacy {
		return h.validateLegacy(maxEpisode)
	}
	return h.validateModern(maxEpisode)
}

func (h Header) validateModern(maxEpisode int) error {
	if !within(h.Version, 100+MinVersion, 100+MaxVersion) {
		return &FieldError{Field: "LMP version number", Offset: 0, Value: h.Version}
	}
	if !within(h.Skill, 0, 4) {
		return &FieldError{Field: "skill level", Offset: 1, Value: h.Skill}
	}
	if !within(h.Episode, 1, maxEpisode) {
		return &FieldError{Field: "episode", Offset: 2, Value: h.Episode}
	}
	maxMap := 9
	if h.Episode < 2 {
		maxMap = 32
	}
	if !within(h.Map, 1, maxMap) {
		return &FieldError{
			Field:  fmt.Sprintf("map for episode %d", h.Episode),
			Offset: 3,
			Value:  h.Map,
		}
	}
	if !within(int(h.Mode), 0, 2) {
		return &FieldError{Field: "play mode", Offset: 4, Value: int(h.Mode)}
	}
	if !within(h.Recorder, 0, MaxPlayers-1) {
		return &FieldError{Field: "recording player", Offset: 8, Value: h.Recorder}
	}
	if err := h.validatePlayers(9); err != nil {
		return err
	}
	if !h.Active(h.Recorder) {
		return &FieldError{Field: "recording player", Offset: 8, Value: h.Recorder, Reason: "not active"}
	}
	return nil
}

func (h Header) validateLegacy(maxEpisode int) error {
	if !within(h.Skill, 0, 4) {
		return &FieldError{Field: "skill level", Offset: 0, Value: h.Skill}
	}
	if !within(h.Episode, 1, maxEpisode) {
		return &FieldError{Field: "episode", Offset: 1, Value: h.Episode}
	}
	if !within(h.Map, 1, 9) {
		return &FieldError{Field: "map", Offset: 2, Value: h.Map}
	}
	return h.validatePlayers(3)
}

func (h Header) validatePlayers(base int) error {
	for i, p := range h.Players {
		if !within(p, 0, 1) {
			return &FieldError{
				Field:  PlayerName(i) + " player indicator",
				Offset: base + i,
				Value:  p,
			}
		}
	}
	if h.ActiveCount() == 0 {
		return &FieldError{
			Field:  "player indicators",
			Offset: base,
			Value:  0,
			Reason: fmt.Sprintf("no active player found in offsets %d-%d", base, base+MaxPlayers-1),
		}
	}
	return nil
}

func within(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
