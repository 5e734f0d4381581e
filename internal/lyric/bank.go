// Package lyric implements the finish-the-lyric game over a bank of
// traditional songs.
package lyric

// Line is one fill-in-the-blank lyric.
type Line struct {
	Song   string
	Prompt string // Lyric with the missing words shown as ___
	Answer string
}

// Genres lists the bank genres in display order.
var Genres = []string{"Nursery Rhymes", "Folk", "Holiday"}

var bank = map[string][]Line{
	"Nursery Rhymes": {
		{Song: "Twinkle, Twinkle, Little Star", Prompt: "Twinkle, twinkle, little star, how I wonder ___", Answer: "what you are"},
		{Song: "Mary Had a Little Lamb", Prompt: "Mary had a little lamb, its fleece was white as ___", Answer: "snow"},
		{Song: "Row, Row, Row Your Boat", Prompt: "Merrily, merrily, merrily, merrily, life is but a ___", Answer: "dream"},
		{Song: "Humpty Dumpty", Prompt: "Humpty Dumpty sat on a wall, Humpty Dumpty had a great ___", Answer: "fall"},
		{Song: "Baa, Baa, Black Sheep", Prompt: "Baa, baa, black sheep, have you any ___", Answer: "wool"},
	},
	"Folk": {
		{Song: "Oh! Susanna", Prompt: "Oh, Susanna, oh don't you cry for me, for I come from Alabama with my ___ on my knee", Answer: "banjo"},
		{Song: "Home on the Range", Prompt: "Oh give me a home where the buffalo ___", Answer: "roam"},
		{Song: "Camptown Races", Prompt: "Camptown ladies sing this song, doo-dah, ___", Answer: "doo-dah"},
		{Song: "Clementine", Prompt: "Oh my darling, oh my darling, oh my darling ___", Answer: "clementine"},
		{Song: "She'll Be Coming 'Round the Mountain", Prompt: "She'll be coming 'round the mountain when she ___", Answer: "comes"},
	},
	"Holiday": {
		{Song: "Jingle Bells", Prompt: "Jingle bells, jingle bells, jingle all the ___", Answer: "way"},
		{Song: "Deck the Halls", Prompt: "Deck the halls with boughs of ___", Answer: "holly"},
		{Song: "Auld Lang Syne", Prompt: "Should old acquaintance be forgot, and never brought to ___", Answer: "mind"},
		{Song: "We Wish You a Merry Christmas", Prompt: "We wish you a Merry Christmas and a Happy New ___", Answer: "year"},
		{Song: "Up on the Housetop", Prompt: "Up on the housetop reindeer pause, out jumps good old Santa ___", Answer: "claus"},
	},
}

// Lines returns a copy of the lines for genre, or nil if unknown.
func Lines(genre string) []Line {
	src := bank[genre]
	if src == nil {
		return nil
	}
	return append([]Line(nil), src...)
}
