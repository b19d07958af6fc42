package catalog

// ScaleType is the mode/quality grouping used to filter the scale library.
type ScaleType string

const (
	ScaleMajor         ScaleType = "Major"
	ScaleNaturalMinor  ScaleType = "Natural Minor"
	ScaleHarmonicMinor ScaleType = "Harmonic Minor"
	ScaleMelodicMinor  ScaleType = "Melodic Minor"
	ScaleDorian        ScaleType = "Dorian"
	ScaleMixolydian    ScaleType = "Mixolydian"
	ScaleAltered       ScaleType = "Altered"
	ScaleLydian        ScaleType = "Lydian"
	ScalePhrygian      ScaleType = "Phrygian"
	ScaleLocrian       ScaleType = "Locrian"
)

// AllScaleTypes returns the full, ordered scale category list.
func AllScaleTypes() []ScaleType {
	return []ScaleType{
		ScaleMajor,
		ScaleNaturalMinor,
		ScaleHarmonicMinor,
		ScaleMelodicMinor,
		ScaleDorian,
		ScaleMixolydian,
		ScaleAltered,
		ScaleLydian,
		ScalePhrygian,
		ScaleLocrian,
	}
}

var scaleLibrary = buildScaleLibrary()

// ScaleLibrary returns the full scale catalog: 17 roots across 10 types,
// 170 scales. The returned slice is shared; callers must treat it as
// read-only.
func ScaleLibrary() []Item[ScaleType] {
	return scaleLibrary
}

func buildScaleLibrary() []Item[ScaleType] {
	var lib []Item[ScaleType]
	for _, t := range AllScaleTypes() {
		for _, root := range roots {
			lib = append(lib, Item[ScaleType]{
				Root:     root,
				Category: t,
				Name:     string(root) + " " + string(t),
			})
		}
	}
	return lib
}
