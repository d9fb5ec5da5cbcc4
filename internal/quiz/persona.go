package quiz

import "fmt"

// Code is a two-letter classification such as "ET" or "IF".
type Code string

const (
	CodeET Code = "ET"
	CodeEF Code = "EF"
	CodeIT Code = "IT"
	CodeIF Code = "IF"
)

// FallbackCode is the entry used when a code has no persona.
const FallbackCode = CodeET

// Persona is the result shown for a classification code.
type Persona struct {
	Code        Code
	Title       string
	Description string
}

var personas = map[Code]Persona{
	CodeET: {
		Code:        CodeET,
		Title:       "The Analyst (ET)",
		Description: "Driven, energetic, and logical. You enjoy leading with ideas, testing hypotheses, and rallying people around clear goals.",
	},
	CodeEF: {
		Code:        CodeEF,
		Title:       "The Connector (EF)",
		Description: "Warm, outgoing, and values-driven. You thrive in communities, elevating others and creating shared moments.",
	},
	CodeIT: {
		Code:        CodeIT,
		Title:       "The Architect (IT)",
		Description: "Independent, systematic, and curious. You love deep work, building solid frameworks, and perfecting details.",
	},
	CodeIF: {
		Code:        CodeIF,
		Title:       "The Sage (IF)",
		Description: "Reflective, empathetic, and principled. You seek meaning, nurture close bonds, and choose depth over noise.",
	},
}

// Classify derives the two-letter code from scores. Ties go to E and T.
func Classify(s Scores) Code {
	axis1 := "I"
	if s.Get(TraitE) >= s.Get(TraitI) {
		axis1 = "E"
	}
	axis2 := "F"
	if s.Get(TraitT) >= s.Get(TraitF) {
		axis2 = "T"
	}
	return Code(axis1 + axis2)
}

// Lookup returns the persona for code. An unknown code yields the
// FallbackCode persona together with ErrUnmappedCode.
func Lookup(code Code) (Persona, error) {
	if p, ok := personas[code]; ok {
		return p, nil
	}
	return personas[FallbackCode], fmt.Errorf("%w: %q", ErrUnmappedCode, code)
}

// Resolve classifies s and returns the matching persona, falling back
// silently for unmapped codes.
func Resolve(s Scores) Persona {
	p, _ := Lookup(Classify(s))
	return p
}

// ShareText formats the plain-text summary handed to share targets.
func ShareText(p Persona) string {
	return fmt.Sprintf("My personality type is %s. %s", p.Title, p.Description)
}
