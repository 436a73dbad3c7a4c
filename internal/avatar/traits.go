package avatar

import (
	"math"
	"strings"

	"mindprint/internal/seed"
)

// TraitVector holds the fifteen appearance traits, each in [0,1].
type TraitVector struct {
	Chibi        float64 `json:"chibi"`
	EyeSize      float64 `json:"eye_size"`
	Cheek        float64 `json:"cheek"`
	Smile        float64 `json:"smile"`
	Roundness    float64 `json:"roundness"`
	StrokeWeight float64 `json:"stroke_weight"`
	Wobble       float64 `json:"wobble"`
	Simplicity   float64 `json:"simplicity"`
	Energy       float64 `json:"energy"`
	Openness     float64 `json:"openness"`
	Calm         float64 `json:"calm"`
	Tech         float64 `json:"tech"`
	Nature       float64 `json:"nature"`
	Mystic       float64 `json:"mystic"`
	Order        float64 `json:"order"`
}

// traitKeys fixes the hash-routing order. Changing it changes every derived
// avatar, so it is frozen alongside the version string.
var traitKeys = []string{
	"chibi", "eye_size", "cheek", "smile", "roundness",
	"stroke_weight", "wobble", "simplicity", "energy", "openness",
	"calm", "tech", "nature", "mystic", "order",
}

func (v *TraitVector) field(key string) *float64 {
	switch key {
	case "chibi":
		return &v.Chibi
	case "eye_size":
		return &v.EyeSize
	case "cheek":
		return &v.Cheek
	case "smile":
		return &v.Smile
	case "roundness":
		return &v.Roundness
	case "stroke_weight":
		return &v.StrokeWeight
	case "wobble":
		return &v.Wobble
	case "simplicity":
		return &v.Simplicity
	case "energy":
		return &v.Energy
	case "openness":
		return &v.Openness
	case "calm":
		return &v.Calm
	case "tech":
		return &v.Tech
	case "nature":
		return &v.Nature
	case "mystic":
		return &v.Mystic
	case "order":
		return &v.Order
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func baseTraitsByMbti(mbti string) TraitVector {
	text := strings.ToUpper(mbti)
	letter := func(idx int, want byte) float64 {
		if idx < len(text) && text[idx] == want {
			return 1
		}
		return 0
	}
	ei := letter(0, 'E')
	sn := letter(1, 'N')
	tf := letter(2, 'F')
	jp := letter(3, 'J')

	return TraitVector{
		Chibi:        0.56 + tf*0.08 - ei*0.04,
		EyeSize:      0.5 + tf*0.16 + sn*0.1,
		Cheek:        0.45 + tf*0.18 - jp*0.08,
		Smile:        0.48 + ei*0.16 + tf*0.1,
		Roundness:    0.54 + tf*0.18 - jp*0.1,
		StrokeWeight: 0.46 + jp*0.16 - sn*0.08,
		Wobble:       0.35 + sn*0.16 + ei*0.08,
		Simplicity:   0.46 + jp*0.14 - sn*0.1,
		Energy:       0.42 + ei*0.32,
		Openness:     0.36 + ei*0.22 + sn*0.2,
		Calm:         0.48 + (1-ei)*0.2 + jp*0.1,
		Tech:         0.34 + (1-tf)*0.2 + jp*0.12,
		Nature:       0.34 + tf*0.2 + (1-jp)*0.08,
		Mystic:       0.26 + sn*0.26 + tf*0.1,
		Order:        0.34 + jp*0.32 + (1-sn)*0.08,
	}
}

func optionToSignedValue(option string) float64 {
	switch option {
	case "1":
		return -1
	case "2":
		return -0.5
	case "3":
		return 0
	case "4":
		return 0.5
	case "5":
		return 1
	case "A":
		return -1
	case "B":
		return -0.5
	case "C":
		return 0
	case "D":
		return 0.5
	case "E":
		return 1
	}
	return 0
}

// mapAnswersToTraitDeltas routes each answer onto a primary and secondary
// trait chosen by hashing the question id. The hash also fixes each delta's
// sign, so the routing is stable per question across sessions.
func mapAnswersToTraitDeltas(answers []AnswerInput) map[string]float64 {
	deltas := map[string]float64{}
	for _, a := range NormalizeAnswers(answers) {
		signed := optionToSignedValue(a.Option)
		intensity := math.Abs(signed)
		primary := traitKeys[seed.Hash32(a.QuestionID+":p")%uint32(len(traitKeys))]
		secondary := traitKeys[seed.Hash32(a.QuestionID+":s")%uint32(len(traitKeys))]
		dirPrimary := 1.0
		if seed.Hash32(a.QuestionID+":d1")&1 != 0 {
			dirPrimary = -1.0
		}
		dirSecondary := 1.0
		if seed.Hash32(a.QuestionID+":d2")&1 != 0 {
			dirSecondary = -1.0
		}
		deltas[primary] += signed * dirPrimary * 0.09
		deltas[secondary] += signed * intensity * dirSecondary * 0.04
	}
	return deltas
}

// BuildTraitVector merges the MBTI base with answer deltas and applies the
// cute-constraint shaping pass.
func BuildTraitVector(mbti string, answers []AnswerInput) TraitVector {
	merged := baseTraitsByMbti(mbti)
	deltas := mapAnswersToTraitDeltas(answers)
	for _, key := range traitKeys {
		f := merged.field(key)
		*f = clamp01(*f + deltas[key])
	}

	merged.Chibi = clamp01(merged.Chibi)
	merged.EyeSize = clamp01(merged.EyeSize*0.9 + merged.Chibi*0.1)
	merged.Roundness = clamp01(merged.Roundness*0.85 + 0.08)
	merged.Simplicity = clamp01(merged.Simplicity)
	return merged
}
