package genome

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"mindprint/internal/engine"
	"mindprint/internal/seed"
)

type PetSpecies string

const (
	SpeciesBlob   PetSpecies = "blob"
	SpeciesBunny  PetSpecies = "bunny"
	SpeciesCat    PetSpecies = "cat"
	SpeciesFox    PetSpecies = "fox"
	SpeciesBear   PetSpecies = "bear"
	SpeciesSprite PetSpecies = "sprite"
)

type PetMood string

const (
	MoodCalm       PetMood = "calm"
	MoodCurious    PetMood = "curious"
	MoodFocused    PetMood = "focused"
	MoodGentle     PetMood = "gentle"
	MoodBold       PetMood = "bold"
	MoodMysterious PetMood = "mysterious"
)

// PetPalette holds the five body colors as CSS hsl() strings.
type PetPalette struct {
	Skin   string `json:"skin"`
	Body   string `json:"body"`
	Accent string `json:"accent"`
	Aura   string `json:"aura"`
	Line   string `json:"line"`
}

// PetModel is the full companion figure derivation: species, expression,
// proportions, and palette, all reproducible from its seed.
type PetModel struct {
	Seed       string     `json:"seed"`
	Species    PetSpecies `json:"species"`
	Mood       PetMood    `json:"mood"`
	FeatureTag string     `json:"featureTag"`
	EyeStyle   string     `json:"eyeStyle"`
	EyeScale   float64    `json:"eyeScale"`
	HeadScale  float64    `json:"headScale"`
	BodyScale  float64    `json:"bodyScale"`
	LimbScale  float64    `json:"limbScale"`
	Accessory  string     `json:"accessory"`
	AuraStyle  string     `json:"auraStyle"`
	Palette    PetPalette `json:"palette"`
}

// PetInput couples the genome with the scoring outputs of one session.
type PetInput struct {
	UserID    string
	SessionID string
	MBTI      string
	StyleDNA  StyleDNA
	Scores    engine.DimensionScores
	Behavior  engine.BehaviorStats
}

// PetPlaceholderSVG renders as an invisible square while a client loads the
// real figure.
const PetPlaceholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1" aria-hidden="true"><rect width="1" height="1" fill="transparent"/></svg>`

func petHSL(h, s, l float64) string {
	return fmt.Sprintf("hsl(%d %d%% %d%%)",
		int(math.Round(h)),
		int(math.Round(clamp(s, 0, 100))),
		int(math.Round(clamp(l, 0, 100))))
}

func dimensionFeature(scores engine.DimensionScores) string {
	type entry struct {
		dim   engine.Dimension
		value float64
	}
	items := make([]entry, 0, len(engine.Dimensions))
	for _, dim := range engine.Dimensions {
		items = append(items, entry{dim: dim, value: scores[dim]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return math.Abs(items[i].value) > math.Abs(items[j].value)
	})
	top := items[0]
	switch top.dim {
	case engine.DimensionEI:
		if top.value >= 0 {
			return "social"
		}
		return "introspective"
	case engine.DimensionSN:
		if top.value >= 0 {
			return "grounded"
		}
		return "visionary"
	case engine.DimensionTF:
		if top.value >= 0 {
			return "logical"
		}
		return "empathetic"
	}
	if top.value >= 0 {
		return "structured"
	}
	return "adaptive"
}

func speciesFromScores(scores engine.DimensionScores) PetSpecies {
	switch {
	case scores[engine.DimensionSN] < -0.45:
		return SpeciesSprite
	case scores[engine.DimensionEI] > 0.4:
		return SpeciesBunny
	case scores[engine.DimensionTF] < -0.35:
		return SpeciesCat
	case scores[engine.DimensionJP] < -0.35:
		return SpeciesFox
	case scores[engine.DimensionSN] > 0.42:
		return SpeciesBear
	}
	return SpeciesBlob
}

func moodFromScores(scores engine.DimensionScores, behavior engine.BehaviorStats) PetMood {
	switch {
	case behavior.ReverseSensitivity > 0.58:
		return MoodMysterious
	case scores[engine.DimensionEI] > 0.42:
		return MoodCurious
	case scores[engine.DimensionTF] > 0.38:
		return MoodFocused
	case scores[engine.DimensionTF] < -0.35:
		return MoodGentle
	case scores[engine.DimensionJP] > 0.35:
		return MoodBold
	}
	return MoodCalm
}

func eyeStyleFor(scores engine.DimensionScores, mood PetMood) string {
	switch {
	case mood == MoodCurious:
		return "sparkle"
	case mood == MoodGentle:
		return "smile"
	case scores[engine.DimensionTF] > 0.42 || mood == MoodFocused:
		return "focus"
	}
	return "dot"
}

func accessoryFromStyle(dna StyleDNA, feature string) string {
	switch dna.Accessory {
	case "halo":
		return "halo"
	case "scarf":
		return "scarf"
	case "antenna":
		return "leaf"
	case "backpack":
		return "orb"
	}
	switch feature {
	case "logical":
		return "glasses"
	case "structured":
		return "headband"
	}
	return "none"
}

func auraStyleFor(behavior engine.BehaviorStats, scores engine.DimensionScores) string {
	switch {
	case behavior.Extremity > 0.72:
		return "flame"
	case behavior.ReverseSensitivity > 0.5:
		return "sparkle"
	case scores[engine.DimensionEI] > 0.35:
		return "ring"
	case behavior.Neutrality > 0.52:
		return "none"
	}
	return "soft"
}

func paletteEntry(dna StyleDNA, idx int, fallback HSLColor) HSLColor {
	if idx < len(dna.BasePalette) {
		return dna.BasePalette[idx]
	}
	return fallback
}

// GeneratePet derives the companion figure. Proportions are mostly driven by
// scores and behavior; the seeded rng only jitters limb scale and hues.
func GeneratePet(input PetInput) PetModel {
	scores := input.Scores
	behavior := input.Behavior
	petSeed := input.StyleDNA.Seed + ":" + input.SessionID + ":pet3d"
	rng := seed.FromString(petSeed)

	featureTag := dimensionFeature(scores)
	species := speciesFromScores(scores)
	mood := moodFromScores(scores, behavior)
	eye := eyeStyleFor(scores, mood)
	accessory := accessoryFromStyle(input.StyleDNA, featureTag)
	aura := auraStyleFor(behavior, scores)

	ei := scores[engine.DimensionEI]
	tf := scores[engine.DimensionTF]
	jp := scores[engine.DimensionJP]

	headScale := roundTo(clamp(1.05+(1-math.Abs(tf))*0.22+behavior.Neutrality*0.12, 0.95, 1.38), 3)
	bodyScale := roundTo(clamp(0.94+math.Abs(jp)*0.18-behavior.Neutrality*0.06, 0.86, 1.28), 3)
	limbScale := roundTo(clamp(0.9+behavior.Extremity*0.2+(rng()-0.5)*0.08, 0.82, 1.22), 3)
	eyeScale := roundTo(clamp(0.86+(ei+1)*0.15+behavior.Neutrality*0.08, 0.72, 1.34), 3)

	base0 := paletteEntry(input.StyleDNA, 0, HSLColor{H: 200, S: 50, L: 50})
	base1 := paletteEntry(input.StyleDNA, 1, HSLColor{H: 120, S: 50, L: 50})
	base2 := paletteEntry(input.StyleDNA, 2, HSLColor{H: 20, S: 60, L: 52})
	base3 := paletteEntry(input.StyleDNA, 3, HSLColor{H: 300, S: 50, L: 50})

	bodyHue := math.Mod(base1.H*0.45+base2.H*0.35+base0.H*0.2+rng()*18, 360)
	accentHue := math.Mod(base3.H+rng()*24, 360)
	skinHue := math.Mod(24+(1-(tf+1)/2)*10+rng()*6, 360)
	auraShift := -18.0
	if ei > 0 {
		auraShift = 18
	}
	auraHue := math.Mod(base0.H+auraShift+rng()*12+360, 360)

	return PetModel{
		Seed:       petSeed,
		Species:    species,
		Mood:       mood,
		FeatureTag: featureTag,
		EyeStyle:   eye,
		EyeScale:   eyeScale,
		HeadScale:  headScale,
		BodyScale:  bodyScale,
		LimbScale:  limbScale,
		Accessory:  accessory,
		AuraStyle:  aura,
		Palette: PetPalette{
			Skin:   petHSL(skinHue, 46-behavior.Neutrality*10, 72-behavior.Extremity*6),
			Body:   petHSL(bodyHue, 58-behavior.Neutrality*14, 52-behavior.Extremity*4),
			Accent: petHSL(accentHue, 66-behavior.Neutrality*12, 56),
			Aura:   petHSL(auraHue, 72-behavior.Neutrality*10, 60-behavior.Extremity*4),
			Line:   petHSL(base2.H+4, 18, 15),
		},
	}
}

// ParsePetModel decodes a stored pet blob, returning nil when the blob is
// missing or missing its identity fields.
func ParsePetModel(raw []byte) *PetModel {
	if len(raw) == 0 {
		return nil
	}
	var pet PetModel
	if err := json.Unmarshal(raw, &pet); err != nil {
		return nil
	}
	if pet.Seed == "" || pet.Species == "" || pet.Mood == "" {
		return nil
	}
	return &pet
}
