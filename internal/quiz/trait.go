package quiz

// Trait is one of the four scoring axes.
type Trait int

const (
	TraitE Trait = iota // Extraversion
	TraitI              // Introversion
	TraitT              // Thinking
	TraitF              // Feeling

	numTraits
)

// Traits lists every trait in display order.
var Traits = [numTraits]Trait{TraitE, TraitI, TraitT, TraitF}

// String returns the single-letter trait code.
func (t Trait) String() string {
	switch t {
	case TraitE:
		return "E"
	case TraitI:
		return "I"
	case TraitT:
		return "T"
	case TraitF:
		return "F"
	default:
		return "?"
	}
}

// Scores holds one integer per trait. The zero value is all zeros.
type Scores [numTraits]int

// Add returns the elementwise sum of s and o.
func (s Scores) Add(o Scores) Scores {
	for i := range s {
		s[i] += o[i]
	}
	return s
}

// Get returns the score for t, or 0 for an unknown trait.
func (s Scores) Get(t Trait) int {
	if t < 0 || t >= numTraits {
		return 0
	}
	return s[t]
}

// Map returns the scores keyed by trait letter.
func (s Scores) Map() map[string]int {
	m := make(map[string]int, numTraits)
	for _, t := range Traits {
		m[t.String()] = s[t]
	}
	return m
}

