package genome

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"mindprint/internal/engine"
)

func sampleInput() Input {
	return Input{
		UserID:    "u1",
		SessionID: "s1",
		Scores: engine.DimensionScores{
			engine.DimensionEI: 0.6,
			engine.DimensionSN: -0.2,
			engine.DimensionTF: 0.4,
			engine.DimensionJP: 0.1,
		},
		Behavior: engine.BehaviorStats{
			Extremity:          0.5,
			Consistency:        0.7,
			Neutrality:         0.2,
			ReverseSensitivity: 0.1,
		},
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(sampleInput())
	b := Generate(sampleInput())

	require.Equal(t, a.Seed, b.Seed)
	require.Equal(t, a.BasePalette, b.BasePalette)
	require.Equal(t, a.Companion, b.Companion)
	require.Len(t, a.BasePalette, 4)
	require.Len(t, a.RegionMap, 8)
	require.NotNil(t, a.Companion)
	require.NotEmpty(t, a.Companion.Name)
	require.NotEmpty(t, a.Companion.Motto)

	other := sampleInput()
	other.SessionID = "s2"
	c := Generate(other)
	require.NotEqual(t, a.Seed, c.Seed)
}

func TestGenerateSilhouetteThresholds(t *testing.T) {
	input := sampleInput()

	input.Behavior.Extremity = 0.2
	require.Equal(t, SilhouetteRound, Generate(input).Silhouette)

	input.Behavior.Extremity = 0.5
	require.Equal(t, SilhouetteBalanced, Generate(input).Silhouette)

	input.Behavior.Extremity = 0.8
	require.Equal(t, SilhouetteSharp, Generate(input).Silhouette)
}

func TestGenerateTextureChain(t *testing.T) {
	input := sampleInput()

	input.Behavior.ReverseSensitivity = 0.7
	require.Equal(t, TextureSplit, Generate(input).Texture)

	input.Behavior.ReverseSensitivity = 0.1
	input.Behavior.Consistency = 0.2
	require.Equal(t, TextureGradient, Generate(input).Texture)

	input.Behavior.Consistency = 0.5
	require.Equal(t, TextureStripes, Generate(input).Texture)

	input.Behavior.Consistency = 0.9
	input.Behavior.Extremity = 0.8
	input.Behavior.Neutrality = 0.1
	require.Equal(t, TextureDots, Generate(input).Texture)

	input.Behavior.Extremity = 0.5
	require.Equal(t, TextureNone, Generate(input).Texture)
}

func TestGenerateAccessory(t *testing.T) {
	input := sampleInput()
	require.Equal(t, "halo", Generate(input).Accessory)

	input.Behavior.Neutrality = 0.7
	require.Equal(t, "none", Generate(input).Accessory)

	input.Behavior.Neutrality = 0.2
	input.Scores[engine.DimensionTF] = -0.9
	require.Equal(t, "scarf", Generate(input).Accessory)
}

func TestEnsureCompanionBackfill(t *testing.T) {
	dna := Generate(sampleInput())
	withExisting := EnsureCompanion(dna)
	require.Equal(t, dna.Companion, withExisting.Companion)

	dna.Companion = nil
	backfilled := EnsureCompanion(dna)
	require.NotNil(t, backfilled.Companion)
	require.Equal(t, backfilled.Companion, EnsureCompanion(dna).Companion)
}

func TestParseStyleDNA(t *testing.T) {
	require.Nil(t, ParseStyleDNA(nil))
	require.Nil(t, ParseStyleDNA([]byte("not json")))
	require.Nil(t, ParseStyleDNA([]byte(`{"seed":""}`)))

	dna := Generate(sampleInput())
	raw, err := json.Marshal(dna)
	require.NoError(t, err)

	parsed := ParseStyleDNA(raw)
	require.NotNil(t, parsed)
	require.Equal(t, dna.Seed, parsed.Seed)
	require.Equal(t, dna.Companion.ID, parsed.Companion.ID)
}

func petInput() PetInput {
	base := sampleInput()
	return PetInput{
		UserID:    base.UserID,
		SessionID: base.SessionID,
		MBTI:      "ENTJ",
		StyleDNA:  Generate(base),
		Scores:    base.Scores,
		Behavior:  base.Behavior,
	}
}

func TestGeneratePetDeterministic(t *testing.T) {
	a := GeneratePet(petInput())
	b := GeneratePet(petInput())
	require.Equal(t, a, b)

	require.Contains(t, a.Seed, ":pet3d")
	require.GreaterOrEqual(t, a.HeadScale, 0.95)
	require.LessOrEqual(t, a.HeadScale, 1.38)
	require.GreaterOrEqual(t, a.LimbScale, 0.82)
	require.LessOrEqual(t, a.LimbScale, 1.22)
}

func TestGeneratePetSpecies(t *testing.T) {
	input := petInput()

	input.Scores[engine.DimensionSN] = -0.6
	require.Equal(t, SpeciesSprite, GeneratePet(input).Species)

	input.Scores[engine.DimensionSN] = 0.1
	input.Scores[engine.DimensionEI] = 0.6
	require.Equal(t, SpeciesBunny, GeneratePet(input).Species)

	input.Scores[engine.DimensionEI] = 0.1
	input.Scores[engine.DimensionTF] = -0.5
	require.Equal(t, SpeciesCat, GeneratePet(input).Species)

	input.Scores[engine.DimensionTF] = 0.1
	input.Scores[engine.DimensionJP] = -0.5
	require.Equal(t, SpeciesFox, GeneratePet(input).Species)

	input.Scores[engine.DimensionJP] = 0.1
	input.Scores[engine.DimensionSN] = 0.6
	require.Equal(t, SpeciesBear, GeneratePet(input).Species)

	input.Scores[engine.DimensionSN] = 0.1
	require.Equal(t, SpeciesBlob, GeneratePet(input).Species)
}

func TestGeneratePetMoodAndEyes(t *testing.T) {
	input := petInput()
	input.Behavior.ReverseSensitivity = 0.7
	pet := GeneratePet(input)
	require.Equal(t, MoodMysterious, pet.Mood)

	input.Behavior.ReverseSensitivity = 0.1
	input.Scores[engine.DimensionEI] = 0.6
	pet = GeneratePet(input)
	require.Equal(t, MoodCurious, pet.Mood)
	require.Equal(t, "sparkle", pet.EyeStyle)

	input.Scores[engine.DimensionEI] = 0.1
	input.Scores[engine.DimensionTF] = -0.5
	pet = GeneratePet(input)
	require.Equal(t, MoodGentle, pet.Mood)
	require.Equal(t, "smile", pet.EyeStyle)
}

func TestPetPlaceholderSVG(t *testing.T) {
	require.Contains(t, PetPlaceholderSVG, `viewBox="0 0 1 1"`)
	require.Contains(t, PetPlaceholderSVG, `fill="transparent"`)
}

func TestParsePetModel(t *testing.T) {
	require.Nil(t, ParsePetModel(nil))
	require.Nil(t, ParsePetModel([]byte("{}")))

	pet := GeneratePet(petInput())
	raw, err := json.Marshal(pet)
	require.NoError(t, err)

	parsed := ParsePetModel(raw)
	require.NotNil(t, parsed)
	require.Equal(t, pet, *parsed)
}
