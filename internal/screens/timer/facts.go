package timer

import "time"

// FactInterval is how long each break fact stays on screen.
const FactInterval = 5 * time.Second

// Facts rotate on the break screen.
var Facts = []string{
	"Stand up and stretch: your back has been holding you up all session.",
	"Look at something 20 feet away for 20 seconds to rest your eyes.",
	"A glass of water now beats a coffee later.",
	"Short breaks help move what you just learned into long-term memory.",
	"Roll your shoulders back five times and breathe out slowly.",
	"Honey never spoils; jars thousands of years old are still edible.",
	"Octopuses have three hearts and blue blood.",
	"A group of flamingos is called a flamboyance.",
	"Bananas are berries, but strawberries are not.",
	"Sea otters hold hands while they sleep so they do not drift apart.",
	"Your brain uses about a fifth of your body's energy.",
	"Walking for a few minutes can spark more creative ideas than sitting.",
}

// FactAt returns the fact to show after spent time into a break.
func FactAt(spent time.Duration) string {
	if spent < 0 {
		spent = 0
	}
	return Facts[int(spent/FactInterval)%len(Facts)]
}
