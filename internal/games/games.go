// Package games defines the identifiers, catalog and completion contract
// shared by every mini-game.
package games

import "fmt"

// ID identifies a mini-game kind.
type ID string

const (
	Photo  ID = "photo"
	Trivia ID = "trivia"
	Lyric  ID = "lyric"
	Jump   ID = "jump"
	Filter ID = "filter"
)

// All lists every game in catalog order.
var All = []ID{Photo, Trivia, Lyric, Jump, Filter}

// Parse converts a string into a known ID.
func Parse(s string) (ID, error) {
	for _, id := range All {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown game %q", s)
}

// Info describes a game in the selector.
type Info struct {
	ID          ID
	Name        string
	Description string
	Icon        string
}

// Describe returns catalog metadata for a game.
func Describe(id ID) Info {
	switch id {
	case Photo:
		return Info{ID: id, Name: "Photo Capture", Description: "Strike a pose in a 5 second countdown", Icon: "📸"}
	case Trivia:
		return Info{ID: id, Name: "Trivia Quiz", Description: "Answer quick questions against the clock", Icon: "🧠"}
	case Lyric:
		return Info{ID: id, Name: "Finish the Lyric", Description: "Fill in the missing words", Icon: "🎵"}
	case Jump:
		return Info{ID: id, Name: "Sky Jump", Description: "Bounce from platform to platform", Icon: "🦘"}
	case Filter:
		return Info{ID: id, Name: "Filter Booth", Description: "Two minutes of silly camera filters", Icon: "🎨"}
	default:
		return Info{ID: id, Name: string(id), Icon: "🎮"}
	}
}

// Result is what a game hands back when it finishes.
type Result struct {
	Game ID

	// Score is nil for games that do not keep score.
	Score *int

	// Dismissed is set when the user closed the game before it finished.
	Dismissed bool
}

// HasScore reports whether the result carries a score.
func (r Result) HasScore() bool { return r.Score != nil }

// Score returns a pointer to n, for building scored results.
func Score(n int) *int { return &n }
