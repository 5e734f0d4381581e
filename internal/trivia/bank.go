// Package trivia runs timed multiple-choice quizzes from a built-in
// question bank or from LLM-generated questions.
package trivia

// Question is one multiple-choice question.
type Question struct {
	Topic   string   `json:"-"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// Answer returns the text of the correct option.
func (q Question) Answer() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

// Topics lists the bank topics in display order.
var Topics = []string{"Animals", "Geography", "Nature", "Culture", "Food"}

// bank holds the built-in questions per topic.
var bank = map[string][]Question{
	"Animals": {
		{Prompt: "What is the largest mammal in the world?", Options: []string{"African Elephant", "Blue Whale", "Giraffe", "Polar Bear"}, Correct: 1},
		{Prompt: "How many hearts does an octopus have?", Options: []string{"One", "Two", "Three", "Four"}, Correct: 2},
		{Prompt: "What is the fastest land animal?", Options: []string{"Lion", "Cheetah", "Leopard", "Tiger"}, Correct: 1},
		{Prompt: "Which bird is known for mimicking human speech?", Options: []string{"Parrot", "Crow", "Eagle", "Owl"}, Correct: 0},
		{Prompt: "What do you call a group of lions?", Options: []string{"Pack", "Herd", "Pride", "Flock"}, Correct: 2},
	},
	"Geography": {
		{Prompt: "What is the capital of Australia?", Options: []string{"Sydney", "Melbourne", "Canberra", "Brisbane"}, Correct: 2},
		{Prompt: "Which is the longest river in the world?", Options: []string{"Amazon", "Nile", "Mississippi", "Yangtze"}, Correct: 1},
		{Prompt: "How many continents are there?", Options: []string{"Five", "Six", "Seven", "Eight"}, Correct: 2},
		{Prompt: "Which country has the most natural lakes?", Options: []string{"USA", "Russia", "Canada", "Brazil"}, Correct: 2},
		{Prompt: "What is the smallest country in the world?", Options: []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"}, Correct: 1},
	},
	"Nature": {
		{Prompt: "What gas do plants absorb from the atmosphere?", Options: []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"}, Correct: 2},
		{Prompt: "What is the hardest natural substance on Earth?", Options: []string{"Gold", "Iron", "Diamond", "Platinum"}, Correct: 2},
		{Prompt: "How many colors are in a rainbow?", Options: []string{"Five", "Six", "Seven", "Eight"}, Correct: 2},
		{Prompt: "What type of tree produces acorns?", Options: []string{"Pine", "Oak", "Maple", "Birch"}, Correct: 1},
		{Prompt: "What is the process by which plants make food?", Options: []string{"Respiration", "Photosynthesis", "Digestion", "Fermentation"}, Correct: 1},
	},
	"Culture": {
		{Prompt: "Who painted the Mona Lisa?", Options: []string{"Michelangelo", "Leonardo da Vinci", "Raphael", "Donatello"}, Correct: 1},
		{Prompt: "In which country did yoga originate?", Options: []string{"China", "Japan", "India", "Thailand"}, Correct: 2},
		{Prompt: "What is the most widely spoken language in the world?", Options: []string{"English", "Mandarin Chinese", "Spanish", "Hindi"}, Correct: 1},
		{Prompt: "Which ancient wonder is still standing today?", Options: []string{"Hanging Gardens", "Colossus of Rhodes", "Great Pyramid of Giza", "Lighthouse of Alexandria"}, Correct: 2},
		{Prompt: "What is the national instrument of Scotland?", Options: []string{"Violin", "Harp", "Bagpipes", "Accordion"}, Correct: 2},
	},
	"Food": {
		{Prompt: "What is the main ingredient in guacamole?", Options: []string{"Tomato", "Avocado", "Lime", "Onion"}, Correct: 1},
		{Prompt: "Which country is the origin of pizza?", Options: []string{"France", "Greece", "Italy", "Spain"}, Correct: 2},
		{Prompt: "What is the most expensive spice in the world?", Options: []string{"Vanilla", "Cardamom", "Saffron", "Cinnamon"}, Correct: 2},
		{Prompt: "What type of pastry are profiteroles made from?", Options: []string{"Puff pastry", "Shortcrust", "Choux pastry", "Filo pastry"}, Correct: 2},
		{Prompt: "Which fruit has its seeds on the outside?", Options: []string{"Strawberry", "Raspberry", "Kiwi", "Blueberry"}, Correct: 0},
	},
}

// BankQuestions returns a copy of the built-in questions for topic,
// tagged with the topic name. Unknown topics return nil.
func BankQuestions(topic string) []Question {
	src := bank[topic]
	if src == nil {
		return nil
	}
	out := make([]Question, len(src))
	for i, q := range src {
		q.Topic = topic
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
