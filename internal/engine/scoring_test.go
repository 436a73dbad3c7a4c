package engine

import (
	"math"
	"testing"
)

func likertQuestion(id string, dim Dimension, reverse bool) Question {
	return Question{
		ID:             id,
		Text:           "item " + id,
		Dimension:      dim,
		Direction:      1,
		ReverseScoring: reverse,
		Intent:         IntentBaseline,
	}
}

func TestScoreSessionNormalizationAndLetters(t *testing.T) {
	questions := []Question{
		likertQuestion("ei1", DimensionEI, false),
		likertQuestion("ei2", DimensionEI, false),
		likertQuestion("sn1", DimensionSN, false),
		likertQuestion("sn2", DimensionSN, false),
		likertQuestion("tf1", DimensionTF, false),
		likertQuestion("tf2", DimensionTF, true),
		likertQuestion("jp1", DimensionJP, false),
		likertQuestion("jp2", DimensionJP, false),
	}
	answers := []Answer{
		{QuestionID: "ei1", Choice: 5},
		{QuestionID: "ei2", Choice: 5},
		{QuestionID: "sn1", Choice: 1},
		{QuestionID: "sn2", Choice: 1},
		{QuestionID: "tf1", Choice: 4},
		{QuestionID: "tf2", Choice: 4},
		{QuestionID: "jp1", Choice: 3},
		{QuestionID: "jp2", Choice: 3},
	}

	result := ScoreSession(questions, answers)

	if got := result.NormalizedScores[DimensionEI]; got != 1 {
		t.Fatalf("EI score=%v, want 1", got)
	}
	if got := result.NormalizedScores[DimensionSN]; got != -1 {
		t.Fatalf("SN score=%v, want -1", got)
	}
	// Forward +1 and reverse -1 cancel out; ties resolve to the positive pole.
	if got := result.NormalizedScores[DimensionTF]; got != 0 {
		t.Fatalf("TF score=%v, want 0", got)
	}
	if result.MBTI != "ENTJ" {
		t.Fatalf("mbti=%q, want ENTJ", result.MBTI)
	}
	if got := result.AnswerMappedValues["tf2"]; got != -1 {
		t.Fatalf("reverse-scored contribution=%v, want -1", got)
	}
}

func TestScoreSessionSkipsUnknownAnswers(t *testing.T) {
	questions := []Question{likertQuestion("ei1", DimensionEI, false)}
	answers := []Answer{
		{QuestionID: "ei1", Choice: 5},
		{QuestionID: "ghost", Choice: 5},
	}

	result := ScoreSession(questions, answers)

	if got := result.RawScores[DimensionEI]; got != 2 {
		t.Fatalf("EI raw=%v, want 2", got)
	}
	if _, ok := result.AnswerMappedValues["ghost"]; ok {
		t.Fatalf("unknown answer should not be mapped")
	}
}

func TestBehaviorStatsExtremes(t *testing.T) {
	questions := []Question{
		likertQuestion("ei1", DimensionEI, false),
		likertQuestion("ei2", DimensionEI, false),
		likertQuestion("ei3", DimensionEI, false),
		likertQuestion("ei4", DimensionEI, false),
	}
	allFive := []Answer{
		{QuestionID: "ei1", Choice: 5},
		{QuestionID: "ei2", Choice: 5},
		{QuestionID: "ei3", Choice: 5},
		{QuestionID: "ei4", Choice: 5},
	}

	stats := CalculateBehaviorStats(questions, allFive, 20)
	if stats.Extremity != 1 {
		t.Fatalf("extremity=%v, want 1", stats.Extremity)
	}
	if stats.Neutrality != 0 {
		t.Fatalf("neutrality=%v, want 0", stats.Neutrality)
	}
	if stats.Consistency != 1 {
		t.Fatalf("consistency=%v, want 1", stats.Consistency)
	}
	if stats.CompletionPace == nil || *stats.CompletionPace != 1 {
		t.Fatalf("pace=%v, want 1 at 5s per question", stats.CompletionPace)
	}

	allNeutral := []Answer{
		{QuestionID: "ei1", Choice: 3},
		{QuestionID: "ei2", Choice: 3},
		{QuestionID: "ei3", Choice: 3},
		{QuestionID: "ei4", Choice: 3},
	}
	stats = CalculateBehaviorStats(questions, allNeutral, 0)
	if stats.Neutrality != 1 {
		t.Fatalf("neutrality=%v, want 1", stats.Neutrality)
	}
	if stats.Extremity != 0 {
		t.Fatalf("extremity=%v, want 0", stats.Extremity)
	}
	if stats.CompletionPace != nil {
		t.Fatalf("pace should be unset without a duration")
	}
}

func TestBehaviorStatsReverseConflict(t *testing.T) {
	questions := []Question{
		likertQuestion("ei1", DimensionEI, false),
		likertQuestion("ei2", DimensionEI, true),
	}
	// Agreeing with both a forward and a reverse EI item is contradictory.
	answers := []Answer{
		{QuestionID: "ei1", Choice: 5},
		{QuestionID: "ei2", Choice: 5},
	}

	stats := CalculateBehaviorStats(questions, answers, 0)
	if stats.ReverseSensitivity != 0.25 {
		t.Fatalf("reverseSensitivity=%v, want 0.25 (one of four dimensions in conflict)", stats.ReverseSensitivity)
	}
}

func TestScoreAxesNegKeyedOrientation(t *testing.T) {
	items := []AxisItem{{ID: "e1", Axis: AxisEI, Keyed: KeyedNeg}}
	answers := []AxisAnswer{{ID: "e1", Answer: 5}}

	result := ScoreAxes(answers, items)

	if result.Axes.E != 0 || result.Axes.I != 1 {
		t.Fatalf("E=%v I=%v, want 0/1 for a fully reversed item", result.Axes.E, result.Axes.I)
	}
	if result.Type4[0] != 'I' {
		t.Fatalf("type4=%q, want I leading", result.Type4)
	}
	if result.Confidence.EI != 1 {
		t.Fatalf("EI confidence=%v, want 1", result.Confidence.EI)
	}
	if result.Debug.ReversedCount != 1 {
		t.Fatalf("reversedCount=%d, want 1", result.Debug.ReversedCount)
	}
}

func TestScoreAxesSubtypeWithAT(t *testing.T) {
	items := []AxisItem{
		{ID: "e1", Axis: AxisEI, Keyed: KeyedPos},
		{ID: "s1", Axis: AxisSN, Keyed: KeyedPos},
		{ID: "t1", Axis: AxisTF, Keyed: KeyedPos},
		{ID: "j1", Axis: AxisJP, Keyed: KeyedPos},
		{ID: "a1", Axis: AxisAT, Keyed: KeyedPos},
	}
	answers := []AxisAnswer{
		{ID: "e1", Answer: 5},
		{ID: "s1", Answer: 5},
		{ID: "t1", Answer: 5},
		{ID: "j1", Answer: 5},
		{ID: "a1", Answer: 5},
	}

	result := ScoreAxes(answers, items)

	if result.Type4 != "ESTJ" {
		t.Fatalf("type4=%q, want ESTJ", result.Type4)
	}
	if result.Subtype != "ESTJ-A" {
		t.Fatalf("subtype=%q, want ESTJ-A", result.Subtype)
	}
	if result.Axes.A == nil || *result.Axes.A != 1 {
		t.Fatalf("A percent=%v, want 1", result.Axes.A)
	}
	if result.Confidence.AT == nil {
		t.Fatalf("expected AT confidence to be set")
	}
}

func TestScoreAxesUnreliableCoverage(t *testing.T) {
	items := []AxisItem{
		{ID: "e1", Axis: AxisEI, Keyed: KeyedPos},
		{ID: "e2", Axis: AxisEI, Keyed: KeyedPos},
		{ID: "e3", Axis: AxisEI, Keyed: KeyedPos},
	}
	answers := []AxisAnswer{
		{ID: "e1", Answer: 4},
		{ID: "e2", Answer: 4},
	}

	result := ScoreAxes(answers, items)

	if !result.Unreliable || !result.NeedsSupplement {
		t.Fatalf("expected unreliable result at 2/3 coverage")
	}
	if len(result.Debug.MissingItems) != 1 || result.Debug.MissingItems[0] != "e3" {
		t.Fatalf("missing=%v, want [e3]", result.Debug.MissingItems)
	}
}

func TestScoreAxesInvalidAnswer(t *testing.T) {
	items := []AxisItem{
		{ID: "e1", Axis: AxisEI, Keyed: KeyedPos},
		{ID: "e2", Axis: AxisEI, Keyed: KeyedPos},
	}
	answers := []AxisAnswer{
		{ID: "e1", Answer: 4},
		{ID: "e2", Answer: 9},
	}

	result := ScoreAxes(answers, items)

	if len(result.Debug.InvalidAnswers) != 1 || result.Debug.InvalidAnswers[0] != "e2" {
		t.Fatalf("invalid=%v, want [e2]", result.Debug.InvalidAnswers)
	}
	if got := result.Debug.PerAxisCount[AxisEI].Answered; got != 1 {
		t.Fatalf("answered=%d, want 1", got)
	}
	if math.Abs(result.Axes.E-0.75) > 1e-9 {
		t.Fatalf("E=%v, want 0.75 from the single valid answer", result.Axes.E)
	}
}

func TestToAxisInputsKeying(t *testing.T) {
	questions := []Question{
		likertQuestion("f1", DimensionTF, false),
		likertQuestion("r1", DimensionTF, true),
	}
	negDirection := likertQuestion("n1", DimensionSN, false)
	negDirection.Direction = -1
	questions = append(questions, negDirection)

	items, axisAnswers := ToAxisInputs(questions, []Answer{{QuestionID: "f1", Choice: 2}})

	if items[0].Keyed != KeyedPos {
		t.Fatalf("forward item keyed %v, want POS", items[0].Keyed)
	}
	if items[1].Keyed != KeyedNeg {
		t.Fatalf("reverse item keyed %v, want NEG", items[1].Keyed)
	}
	if items[2].Keyed != KeyedNeg {
		t.Fatalf("negative-direction item keyed %v, want NEG", items[2].Keyed)
	}
	if len(axisAnswers) != 1 || axisAnswers[0].Answer != 2 {
		t.Fatalf("axis answers=%v, want the one bridged answer", axisAnswers)
	}
}
