package quiz

// Option is one selectable answer and the trait weights it contributes.
type Option struct {
	Label  string
	Scores Scores
}

// Question is a single multiple-choice prompt.
type Question struct {
	ID      int
	Text    string
	Options []Option
}

// bank is the fixed question set. It is never mutated after init.
var bank = []Question{
	{
		ID:   1,
		Text: "It's a free evening. What sounds most fun?",
		Options: []Option{
			{Label: "Go out with a big group", Scores: Scores{TraitE: 2}},
			{Label: "Hang with one close friend", Scores: Scores{TraitI: 1, TraitF: 1}},
			{Label: "Solo project or hobby time", Scores: Scores{TraitI: 2}},
			{Label: "Join a meetup to network", Scores: Scores{TraitE: 1, TraitT: 1}},
		},
	},
	{
		ID:   2,
		Text: "When making decisions, you mostly rely on…",
		Options: []Option{
			{Label: "Objective facts & logic", Scores: Scores{TraitT: 2}},
			{Label: "Gut feelings & values", Scores: Scores{TraitF: 2}},
			{Label: "A mix, but logic leads", Scores: Scores{TraitT: 1}},
			{Label: "A mix, but feelings lead", Scores: Scores{TraitF: 1}},
		},
	},
	{
		ID:   3,
		Text: "At a party, you are most likely to…",
		Options: []Option{
			{Label: "Work the room and meet everyone", Scores: Scores{TraitE: 2}},
			{Label: "Stick with a small, deep convo", Scores: Scores{TraitI: 2, TraitF: 1}},
			{Label: "Find the snack table & observe", Scores: Scores{TraitI: 1}},
			{Label: "Host games or activities", Scores: Scores{TraitE: 1, TraitT: 1}},
		},
	},
	{
		ID:   4,
		Text: "A teammate disagrees with you. You…",
		Options: []Option{
			{Label: "Debate the reasoning step-by-step", Scores: Scores{TraitT: 2}},
			{Label: "Ask how they feel and find harmony", Scores: Scores{TraitF: 2}},
			{Label: "Hear them out, then present data", Scores: Scores{TraitT: 1}},
			{Label: "Seek compromise quickly", Scores: Scores{TraitF: 1}},
		},
	},
	{
		ID:   5,
		Text: "Weekend plan style?",
		Options: []Option{
			{Label: "Packed schedule with friends", Scores: Scores{TraitE: 2}},
			{Label: "Quiet recharge and reading", Scores: Scores{TraitI: 2}},
			{Label: "Workshop / hackathon / chess club", Scores: Scores{TraitT: 2}},
			{Label: "Volunteering / family time", Scores: Scores{TraitF: 2}},
		},
	},
}

// Questions returns a copy of the question bank.
func Questions() []Question {
	out := make([]Question, len(bank))
	for i, q := range bank {
		q.Options = append([]Option(nil), q.Options...)
		out[i] = q
	}
	return out
}

// TotalQuestions returns the number of questions in the bank.
func TotalQuestions() int {
	return len(bank)
}
