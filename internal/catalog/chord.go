package catalog

// ChordType is the quality grouping used to filter the chord library.
type ChordType string

const (
	ChordMajor      ChordType = "Major"
	ChordMinor      ChordType = "Minor"
	ChordDominant   ChordType = "Dominant"
	ChordDiminished ChordType = "Diminished"
	ChordAugmented  ChordType = "Augmented"
	ChordSuspended  ChordType = "Suspended"
	ChordExtended   ChordType = "Extended"
)

// AllChordTypes returns the full, ordered chord category list. Extended is
// selectable but has no dedicated catalog entries; extensions are filed under
// Major/Minor/Dominant.
func AllChordTypes() []ChordType {
	return []ChordType{
		ChordMajor,
		ChordMinor,
		ChordDominant,
		ChordDiminished,
		ChordAugmented,
		ChordSuspended,
		ChordExtended,
	}
}

// chordQualities maps each category to its quality suffixes, in catalog order.
// A bare major triad renders as just the root ("C"), so its suffix is empty.
var chordQualities = []struct {
	category  ChordType
	qualities []string
}{
	{ChordMajor, []string{"", "maj7", "maj9", "maj13"}},
	{ChordMinor, []string{"m", "m7", "m9", "m11", "m13"}},
	{ChordDominant, []string{"7", "9", "13", "7#9", "7b9", "7#5", "7b5", "alt"}},
	{ChordDiminished, []string{"dim", "dim7", "m7b5"}},
	{ChordAugmented, []string{"aug", "maj7#5"}},
	{ChordSuspended, []string{"sus2", "sus4", "7sus4"}},
}

var chordLibrary = buildChordLibrary()

// ChordLibrary returns the full chord catalog: 17 roots across 25 qualities,
// 425 chords. The returned slice is shared; callers must treat it as
// read-only.
func ChordLibrary() []Item[ChordType] {
	return chordLibrary
}

func buildChordLibrary() []Item[ChordType] {
	var lib []Item[ChordType]
	for _, group := range chordQualities {
		for _, root := range roots {
			for _, q := range group.qualities {
				lib = append(lib, Item[ChordType]{
					Root:     root,
					Quality:  q,
					Category: group.category,
					Name:     string(root) + q,
				})
			}
		}
	}
	return lib
}
