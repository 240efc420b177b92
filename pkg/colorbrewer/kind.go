package colorbrewer

import "fmt"

// Which ColorBrewer family a palette belongs to.
type Kind uint8

const (
	// Lightness goes from light to dark across the ramp
	KindSequential Kind = iota

	// Two dark extremes with a light neutral in the middle
	KindDiverging

	// Distinct, unordered colors for categorical data
	KindQualitative
)

func (kind Kind) String() string {
	switch kind {
	case KindSequential:
		return "sequential"
	case KindDiverging:
		return "diverging"
	case KindQualitative:
		return "qualitative"
	}

	return fmt.Sprintf("Kind(%d)", uint8(kind))
}

// The palette constants are ordered by family, see Palettes().
func (palette Palette) Kind() Kind {
	if !palette.valid() {
		panic(fmt.Errorf("no kind for invalid palette %s", palette.String()))
	}

	if palette < PuOr {
		return KindSequential
	}
	if palette < Accent {
		return KindDiverging
	}
	return KindQualitative
}
