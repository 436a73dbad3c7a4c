package avatar

import "mindprint/internal/seed"

type StyleProfileID string

const (
	StyleKawaiiMinimal  StyleProfileID = "KawaiiMinimal"
	StyleSketchWobble   StyleProfileID = "SketchWobble"
	StyleGeometricCute  StyleProfileID = "GeometricCute"
	StyleMangaChibi     StyleProfileID = "MangaChibi"
	StyleNotebookDoodle StyleProfileID = "NotebookDoodle"
	StyleSoftTechLine   StyleProfileID = "SoftTechLine"
)

// StyleProfile tunes the renderer per art style.
type StyleProfile struct {
	ID                StyleProfileID
	StrokeScale       float64
	WobbleFactor      float64
	EyeBoost          float64
	RoundBoost        float64
	SimplicityBias    float64
	DecorationDensity float64
}

var styleProfiles = []StyleProfile{
	{ID: StyleKawaiiMinimal, StrokeScale: 1.02, WobbleFactor: 0.08, EyeBoost: 0.1, RoundBoost: 0.12, SimplicityBias: 0.16, DecorationDensity: 0.2},
	{ID: StyleSketchWobble, StrokeScale: 1.08, WobbleFactor: 0.52, EyeBoost: 0.04, RoundBoost: 0.05, SimplicityBias: -0.08, DecorationDensity: 0.46},
	{ID: StyleGeometricCute, StrokeScale: 1.14, WobbleFactor: 0.04, EyeBoost: 0.06, RoundBoost: -0.1, SimplicityBias: 0.08, DecorationDensity: 0.34},
	{ID: StyleMangaChibi, StrokeScale: 0.98, WobbleFactor: 0.16, EyeBoost: 0.22, RoundBoost: 0.04, SimplicityBias: -0.04, DecorationDensity: 0.58},
	{ID: StyleNotebookDoodle, StrokeScale: 0.9, WobbleFactor: 0.32, EyeBoost: 0.06, RoundBoost: 0.08, SimplicityBias: -0.12, DecorationDensity: 0.66},
	{ID: StyleSoftTechLine, StrokeScale: 0.88, WobbleFactor: 0.04, EyeBoost: 0.08, RoundBoost: 0.02, SimplicityBias: 0.2, DecorationDensity: 0.42},
}

// selectStyleProfile runs a trait-weighted roulette over the six styles.
// The rng advances exactly once.
func selectStyleProfile(traits TraitVector, rng seed.Stream) StyleProfile {
	weighted := []struct {
		id     StyleProfileID
		weight float64
	}{
		{StyleKawaiiMinimal, 0.9 + traits.Simplicity + traits.Roundness + traits.Calm*0.3},
		{StyleSketchWobble, 0.4 + traits.Wobble*1.2 + traits.Energy*0.6},
		{StyleGeometricCute, 0.4 + traits.Order*0.9 + traits.Tech*0.3},
		{StyleMangaChibi, 0.5 + traits.EyeSize*1.1 + traits.Smile*0.5 + traits.Energy*0.4},
		{StyleNotebookDoodle, 0.35 + (1-traits.Simplicity)*0.8 + traits.Openness*0.4},
		{StyleSoftTechLine, 0.45 + traits.Tech*1.1 + traits.Order*0.45 + traits.Simplicity*0.2},
	}

	sum := 0.0
	for _, item := range weighted {
		sum += item.weight
	}
	cursor := rng() * sum
	for _, item := range weighted {
		cursor -= item.weight
		if cursor <= 0 {
			return styleProfileByID(item.id)
		}
	}
	return styleProfiles[len(styleProfiles)-1]
}

func styleProfileByID(id StyleProfileID) StyleProfile {
	for _, style := range styleProfiles {
		if style.ID == id {
			return style
		}
	}
	return styleProfiles[0]
}
