// Package genome derives the visual identity artifacts that a scored
// session feeds into downstream renderers: the StyleDNA genome for the 2D
// identity card and the PetModel for the companion figure.
package genome

import (
	"encoding/json"
	"math"
	"sort"

	"mindprint/internal/engine"
	"mindprint/internal/seed"
)

// HSLColor is a palette entry with two-decimal precision.
type HSLColor struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type Silhouette string

const (
	SilhouetteRound    Silhouette = "round"
	SilhouetteBalanced Silhouette = "balanced"
	SilhouetteSharp    Silhouette = "sharp"
)

type Texture string

const (
	TextureNone     Texture = "none"
	TextureStripes  Texture = "stripes"
	TextureDots     Texture = "dots"
	TextureGradient Texture = "gradient"
	TextureSplit    Texture = "split"
)

// Companion is the named guide persona seeded from the genome.
type Companion struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Tone         string     `json:"tone"`
	Motto        string     `json:"motto"`
	WisdomVector [3]float64 `json:"wisdomVector"`
}

// StyleDNA is the per-user visual genome. It is generated once per user and
// reused across sessions so the identity stays recognizable.
type StyleDNA struct {
	Silhouette  Silhouette                  `json:"silhouette"`
	LineWeight  int                         `json:"lineWeight"`
	Symmetry    float64                     `json:"symmetry"`
	Texture     Texture                     `json:"texture"`
	Accessory   string                      `json:"accessory"`
	BasePalette []HSLColor                  `json:"basePalette"`
	RegionMap   map[string]engine.Dimension `json:"regionMap"`
	Seed        string                      `json:"seed"`
	Companion   *Companion                  `json:"companion,omitempty"`
}

// Input binds the genome to one user and the session that first scored them.
type Input struct {
	UserID    string
	SessionID string
	Scores    engine.DimensionScores
	Behavior  engine.BehaviorStats
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

func interpolate(a, b, t float64) float64 {
	return a + (b-a)*t
}

// hueByDimension anchors each dimension on its own hue pair; the score
// interpolates between the negative and positive pole anchors.
func hueByDimension(dim engine.Dimension, score float64) float64 {
	t := (score + 1) / 2
	switch dim {
	case engine.DimensionEI:
		return interpolate(214, 24, t)
	case engine.DimensionSN:
		return interpolate(294, 42, t)
	case engine.DimensionTF:
		return interpolate(8, 216, t)
	}
	return interpolate(272, 136, t)
}

func colorFromScore(dim engine.Dimension, score float64, behavior engine.BehaviorStats) HSLColor {
	return HSLColor{
		H: roundTo(hueByDimension(dim, score), 2),
		S: roundTo(clamp(68-behavior.Neutrality*28+behavior.Extremity*16, 24, 86), 2),
		L: roundTo(clamp(58+score*7+behavior.Consistency*6-behavior.Extremity*6, 30, 78), 2),
	}
}

func accessoryFromScores(scores engine.DimensionScores, behavior engine.BehaviorStats) string {
	type entry struct {
		dim   engine.Dimension
		value float64
	}
	entries := make([]entry, 0, len(engine.Dimensions))
	for _, dim := range engine.Dimensions {
		entries = append(entries, entry{dim: dim, value: scores[dim]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return math.Abs(entries[i].value) > math.Abs(entries[j].value)
	})
	dominant := entries[0].dim

	if behavior.Neutrality > 0.6 {
		return "none"
	}
	switch dominant {
	case engine.DimensionEI:
		return "halo"
	case engine.DimensionSN:
		return "antenna"
	case engine.DimensionTF:
		return "scarf"
	}
	return "cape"
}

var (
	companionPrefixes = []string{"澄", "熙", "岚", "曜", "栖", "弦", "璃", "沐", "序", "宁"}
	companionSuffixes = []string{"灵", "羽", "镜", "岚", "曜", "音", "屿", "舟", "纹", "芽"}
	companionRoles    = []string{"共鸣向导", "内在观察者", "情绪翻译官", "成长同伴", "人格镜像师"}
	companionMottos   = []string{
		"先理解，再改变。",
		"你的波动不是问题，而是线索。",
		"温柔且持续，比激烈更有力量。",
		"把感受说出来，答案会更清晰。",
		"每一次测试，都是你看见自己的机会。",
	}
	companionTones = []string{"calm", "warm", "analytic", "playful"}
)

func createCompanion(genomeSeed string) *Companion {
	rng := seed.FromString("companion:" + genomeSeed)
	pick := func(list []string) string {
		return list[int(rng()*float64(len(list)))]
	}
	return &Companion{
		ID:    seed.ShortHash("companion-"+genomeSeed, 10),
		Name:  pick(companionPrefixes) + pick(companionSuffixes),
		Role:  pick(companionRoles),
		Tone:  pick(companionTones),
		Motto: pick(companionMottos),
		WisdomVector: [3]float64{
			roundTo(rng(), 4),
			roundTo(rng(), 4),
			roundTo(rng(), 4),
		},
	}
}

// Generate builds the genome. The seed carries the founding session's hash
// so re-generating for the same user and session is a no-op.
func Generate(input Input) StyleDNA {
	behavior := input.Behavior
	genomeSeed := seed.ShortHash(input.UserID+":"+input.SessionID, 16) + ":" + seed.ShortHash(input.UserID, 8)

	extremity := behavior.Extremity
	consistency := behavior.Consistency
	reverse := behavior.ReverseSensitivity

	silhouette := SilhouetteBalanced
	if extremity < 0.35 {
		silhouette = SilhouetteRound
	} else if extremity > 0.68 {
		silhouette = SilhouetteSharp
	}
	lineWeight := int(clamp(math.Round(1+extremity*2+reverse), 1, 4))

	texture := TextureNone
	switch {
	case reverse > 0.58:
		texture = TextureSplit
	case consistency < 0.35:
		texture = TextureGradient
	case consistency < 0.55:
		texture = TextureStripes
	case extremity > 0.7 && behavior.Neutrality < 0.35:
		texture = TextureDots
	}

	basePalette := make([]HSLColor, 0, len(engine.Dimensions))
	for _, dim := range engine.Dimensions {
		basePalette = append(basePalette, colorFromScore(dim, input.Scores[dim], behavior))
	}

	return StyleDNA{
		Silhouette:  silhouette,
		LineWeight:  lineWeight,
		Symmetry:    roundTo(clamp(consistency*(1-reverse*0.45), 0, 1), 4),
		Texture:     texture,
		Accessory:   accessoryFromScores(input.Scores, behavior),
		BasePalette: basePalette,
		RegionMap: map[string]engine.Dimension{
			"head":  engine.DimensionSN,
			"chest": engine.DimensionTF,
			"belly": engine.DimensionJP,
			"armL":  engine.DimensionEI,
			"armR":  engine.DimensionTF,
			"legL":  engine.DimensionJP,
			"legR":  engine.DimensionSN,
			"aura":  engine.DimensionEI,
		},
		Seed:      genomeSeed,
		Companion: createCompanion(genomeSeed),
	}
}

// EnsureCompanion backfills the companion for genomes stored before the
// companion field existed. Existing companions are never replaced.
func EnsureCompanion(dna StyleDNA) StyleDNA {
	if dna.Companion != nil {
		return dna
	}
	dna.Companion = createCompanion(dna.Seed)
	return dna
}

// ParseStyleDNA decodes a stored genome blob, returning nil when the blob is
// missing or structurally invalid.
func ParseStyleDNA(raw []byte) *StyleDNA {
	if len(raw) == 0 {
		return nil
	}
	var dna StyleDNA
	if err := json.Unmarshal(raw, &dna); err != nil {
		return nil
	}
	if dna.Seed == "" || dna.BasePalette == nil {
		return nil
	}
	withCompanion := EnsureCompanion(dna)
	return &withCompanion
}
