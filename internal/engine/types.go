package engine

type Dimension string

const (
	DimensionEI Dimension = "EI"
	DimensionSN Dimension = "SN"
	DimensionTF Dimension = "TF"
	DimensionJP Dimension = "JP"
)

// Dimensions is the canonical iteration order for the four bipolar axes.
var Dimensions = []Dimension{DimensionEI, DimensionSN, DimensionTF, DimensionJP}

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionEI, DimensionSN, DimensionTF, DimensionJP:
		return true
	default:
		return false
	}
}

// Poles returns the positive and negative pole letters, e.g. E/I for EI.
func (d Dimension) Poles() (positive, negative string) {
	switch d {
	case DimensionEI:
		return "E", "I"
	case DimensionSN:
		return "S", "N"
	case DimensionTF:
		return "T", "F"
	case DimensionJP:
		return "J", "P"
	default:
		return "?", "?"
	}
}

type Intent string

const (
	IntentBaseline Intent = "baseline"
	IntentDepth    Intent = "depth"
)

// Question is immutable once generated for a session.
type Question struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	Dimension      Dimension `json:"dimension"`
	Direction      int       `json:"direction"` // +1 or -1
	ReverseScoring bool      `json:"reverseScoring"`
	Intent         Intent    `json:"intent"`
}

// Answer is a single Likert response, choice in 1..5.
type Answer struct {
	QuestionID string `json:"questionId"`
	Choice     int    `json:"choice"`
	ElapsedMs  int64  `json:"elapsedMs,omitempty"`
}

// DimensionScores maps each dimension to a score. Normalized scores sit in
// [-1, 1]; raw scores are unbounded sums.
type DimensionScores map[Dimension]float64

// DimensionLetters maps each dimension to its winning pole letter.
type DimensionLetters map[Dimension]string

type BehaviorStats struct {
	Extremity          float64  `json:"extremity"`
	Consistency        float64  `json:"consistency"`
	Neutrality         float64  `json:"neutrality"`
	ReverseSensitivity float64  `json:"reverseSensitivity"`
	CompletionPace     *float64 `json:"completionPace,omitempty"`
}

func zeroScores() DimensionScores {
	return DimensionScores{DimensionEI: 0, DimensionSN: 0, DimensionTF: 0, DimensionJP: 0}
}
