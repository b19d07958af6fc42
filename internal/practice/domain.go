package practice

// Domain tags which catalog a session ran over. Chord and scale summaries
// share one display path dispatched on this tag.
type Domain string

const (
	DomainChords Domain = "chords"
	DomainScales Domain = "scales"
)

// Noun returns the singular item noun for the domain.
func (d Domain) Noun() string {
	if d == DomainScales {
		return "scale"
	}
	return "chord"
}

// Title returns the capitalized domain label for headers.
func (d Domain) Title() string {
	if d == DomainScales {
		return "Scales"
	}
	return "Chords"
}
