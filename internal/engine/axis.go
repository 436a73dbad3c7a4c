package engine

import "math"

// Axis extends Dimension with the optional assertive/turbulent fifth axis.
type Axis string

const (
	AxisEI Axis = "EI"
	AxisSN Axis = "SN"
	AxisTF Axis = "TF"
	AxisJP Axis = "JP"
	AxisAT Axis = "AT"
)

var axes = []Axis{AxisEI, AxisSN, AxisTF, AxisJP, AxisAT}

type Keyed string

const (
	KeyedPos Keyed = "POS"
	KeyedNeg Keyed = "NEG"
)

// AxisItem is a quiz item for the confidence-aware scorer. Unlike Question it
// carries no direction/reverse flags; keying alone decides orientation.
type AxisItem struct {
	ID    string `json:"id"`
	Axis  Axis   `json:"axis"`
	Keyed Keyed  `json:"keyed"`
	Text  string `json:"text,omitempty"`
}

type AxisAnswer struct {
	ID     string `json:"id"`
	Answer int    `json:"answer"`
}

type AxisCounts struct {
	Total    int `json:"total"`
	Answered int `json:"answered"`
}

// AxisPercents holds the per-pole probability split. A/Turbulent are only set
// when at least one item targets the AT axis.
type AxisPercents struct {
	E float64 `json:"E"`
	I float64 `json:"I"`
	S float64 `json:"S"`
	N float64 `json:"N"`
	T float64 `json:"T"`
	F float64 `json:"F"`
	J float64 `json:"J"`
	P float64 `json:"P"`

	A         *float64 `json:"A,omitempty"`
	Turbulent *float64 `json:"Turbulent,omitempty"`
}

type AxisConfidence struct {
	EI float64  `json:"EI"`
	SN float64  `json:"SN"`
	TF float64  `json:"TF"`
	JP float64  `json:"JP"`
	AT *float64 `json:"AT,omitempty"`
}

type AxisDebug struct {
	PerAxisCount   map[Axis]AxisCounts `json:"perAxisCount"`
	ReversedCount  int                 `json:"reversedCount"`
	MissingItems   []string            `json:"missingItems"`
	InvalidAnswers []string            `json:"invalidAnswers"`
	UnreliableAxes []Axis              `json:"unreliableAxes"`
}

type AxisScoreResult struct {
	Axes            AxisPercents   `json:"axes"`
	Type4           string         `json:"type4"`
	Subtype         string         `json:"subtype,omitempty"`
	Confidence      AxisConfidence `json:"confidence"`
	Unreliable      bool           `json:"unreliable"`
	NeedsSupplement bool           `json:"needsSupplement"`
	Debug           AxisDebug      `json:"debug"`
}

// ScoreAxes is the alternate, confidence-aware scorer. It is a pure function:
// identical (answers, items) produce an identical result value, so callers may
// compare results with plain equality.
//
// Choices outside 1..5 are recorded in Debug.InvalidAnswers instead of
// aborting the whole session.
func ScoreAxes(answers []AxisAnswer, items []AxisItem) AxisScoreResult {
	answerMap := make(map[string]int, len(answers))
	for _, a := range answers {
		answerMap[a.ID] = a.Answer
	}

	valuesByAxis := map[Axis][]float64{}
	counts := map[Axis]AxisCounts{}
	for _, axis := range axes {
		counts[axis] = AxisCounts{}
	}
	missing := []string{}
	invalid := []string{}
	reversedCount := 0

	for _, item := range items {
		c := counts[item.Axis]
		c.Total++
		counts[item.Axis] = c

		answer, ok := answerMap[item.ID]
		if !ok {
			missing = append(missing, item.ID)
			continue
		}
		if answer < 1 || answer > 5 {
			invalid = append(invalid, item.ID)
			continue
		}

		value := float64(answer)
		if item.Keyed == KeyedNeg {
			value = 6 - value
			reversedCount++
		}

		valuesByAxis[item.Axis] = append(valuesByAxis[item.Axis], value)
		c = counts[item.Axis]
		c.Answered++
		counts[item.Axis] = c
	}

	p := map[Axis]float64{AxisEI: 0.5, AxisSN: 0.5, AxisTF: 0.5, AxisJP: 0.5, AxisAT: 0.5}
	for _, axis := range axes {
		values := valuesByAxis[axis]
		if len(values) == 0 {
			continue
		}
		p[axis] = clamp01((mean(values) - 1) / 4)
	}

	confidenceOf := func(axis Axis) float64 {
		return clamp01(math.Abs(p[axis]-0.5) * 2)
	}
	confidence := AxisConfidence{
		EI: confidenceOf(AxisEI),
		SN: confidenceOf(AxisSN),
		TF: confidenceOf(AxisTF),
		JP: confidenceOf(AxisJP),
	}

	pick := func(axis Axis, first, second string) string {
		if p[axis] >= 0.5 {
			return first
		}
		return second
	}
	type4 := pick(AxisEI, "E", "I") + pick(AxisSN, "S", "N") + pick(AxisTF, "T", "F") + pick(AxisJP, "J", "P")

	hasAT := counts[AxisAT].Total > 0
	subtype := ""
	percents := AxisPercents{
		E: p[AxisEI], I: clamp01(1 - p[AxisEI]),
		S: p[AxisSN], N: clamp01(1 - p[AxisSN]),
		T: p[AxisTF], F: clamp01(1 - p[AxisTF]),
		J: p[AxisJP], P: clamp01(1 - p[AxisJP]),
	}
	if hasAT {
		a := p[AxisAT]
		turbulent := clamp01(1 - p[AxisAT])
		percents.A = &a
		percents.Turbulent = &turbulent
		atConfidence := confidenceOf(AxisAT)
		confidence.AT = &atConfidence
		subtype = type4 + "-" + pick(AxisAT, "A", "T")
	}

	// Unreliability is a coverage threshold: fewer than 70% of an axis's
	// items answered, not a low score.
	unreliableAxes := []Axis{}
	for _, axis := range axes {
		total := counts[axis].Total
		if total == 0 {
			continue
		}
		if counts[axis].Answered < int(math.Ceil(float64(total)*0.7)) {
			unreliableAxes = append(unreliableAxes, axis)
		}
	}

	return AxisScoreResult{
		Axes:            percents,
		Type4:           type4,
		Subtype:         subtype,
		Confidence:      confidence,
		Unreliable:      len(unreliableAxes) > 0,
		NeedsSupplement: len(unreliableAxes) > 0,
		Debug: AxisDebug{
			PerAxisCount:   counts,
			ReversedCount:  reversedCount,
			MissingItems:   missing,
			InvalidAnswers: invalid,
			UnreliableAxes: unreliableAxes,
		},
	}
}
