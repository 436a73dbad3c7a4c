package engine

import (
	"strings"
	"testing"
	"time"
)

func trendPoint(day int, scores DimensionScores) TrendPoint {
	return TrendPoint{
		CreatedAt: time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC),
		Scores:    scores,
	}
}

func TestAnalyzeTrendEmptyHistory(t *testing.T) {
	analysis := AnalyzeTrend(nil)
	if analysis.Summary != "暂无历史数据，先完成一次测验。" {
		t.Fatalf("summary=%q", analysis.Summary)
	}
	if len(analysis.Insights) != 0 || len(analysis.Diagnoses) != 0 {
		t.Fatalf("empty history should yield no insights or diagnoses")
	}
	if analysis.PrimaryWeakness != nil {
		t.Fatalf("empty history should not pick a weakness")
	}
}

func TestAnalyzeTrendRanksWeaknesses(t *testing.T) {
	// EI pinned at an extreme across stable sessions; the others near neutral
	// dominance but stable, so extremity on EI should lead the risk ranking.
	history := []TrendPoint{
		trendPoint(1, DimensionScores{DimensionEI: 0.9, DimensionSN: 0.4, DimensionTF: 0.4, DimensionJP: 0.4}),
		trendPoint(2, DimensionScores{DimensionEI: 0.92, DimensionSN: 0.4, DimensionTF: 0.4, DimensionJP: 0.4}),
		trendPoint(3, DimensionScores{DimensionEI: 0.91, DimensionSN: 0.4, DimensionTF: 0.4, DimensionJP: 0.4}),
	}

	analysis := AnalyzeTrend(history)

	if analysis.Summary != "基于 3 次测验生成趋势分析。" {
		t.Fatalf("summary=%q", analysis.Summary)
	}
	if len(analysis.Insights) != 3 {
		t.Fatalf("insights=%d, want 3", len(analysis.Insights))
	}
	if len(analysis.Diagnoses) != 4 {
		t.Fatalf("diagnoses=%d, want 4", len(analysis.Diagnoses))
	}
	if analysis.PrimaryWeakness == nil || analysis.PrimaryWeakness.Dimension != DimensionEI {
		t.Fatalf("primary weakness=%+v, want EI", analysis.PrimaryWeakness)
	}
	if analysis.PrimaryWeakness.RiskType != RiskExtreme {
		t.Fatalf("primary risk=%s, want extreme", analysis.PrimaryWeakness.RiskType)
	}
	if analysis.PrimaryWeakness.WeaknessTitle == "" {
		t.Fatalf("diagnosis copy missing for %s/%s", analysis.PrimaryWeakness.Dimension, analysis.PrimaryWeakness.RiskType)
	}
	if analysis.SecondaryWeakness == nil {
		t.Fatalf("expected a secondary weakness with four diagnoses")
	}
	for i := 1; i < len(analysis.Diagnoses); i++ {
		if analysis.Diagnoses[i].RiskScore > analysis.Diagnoses[i-1].RiskScore {
			t.Fatalf("diagnoses not sorted by risk at %d", i)
		}
	}
}

func TestDiagnosisCopyCoversEveryRisk(t *testing.T) {
	for _, dim := range Dimensions {
		for _, score := range []float64{0.9, -0.9, 0.05} {
			for _, volatility := range []float64{0.05, 0.6} {
				d := buildAxisDiagnosis(dim, score, volatility, 0)
				if d.WeaknessTitle == "" || d.ActionFocus == "" || d.Cue == "" {
					t.Fatalf("missing copy for dim=%s score=%v volatility=%v risk=%s", dim, score, volatility, d.RiskType)
				}
			}
		}
	}
}

func TestGenerateAdviceOnboardingFallback(t *testing.T) {
	advice := GenerateAdvice(AnalyzeTrend(nil))

	if len(advice.ActionSuggestions) != 3 {
		t.Fatalf("suggestions=%d, want 3", len(advice.ActionSuggestions))
	}
	if advice.ReflectionQuestion != "你最近在哪个场景最容易偏离自己的节奏？当时是什么触发了你？" {
		t.Fatalf("reflection=%q", advice.ReflectionQuestion)
	}
	if len(advice.MicroPlan) != 7 {
		t.Fatalf("micro plan=%d days, want 7", len(advice.MicroPlan))
	}
	if !strings.HasPrefix(advice.MicroPlan[0], "Day1：") {
		t.Fatalf("micro plan day 1=%q", advice.MicroPlan[0])
	}
}

func TestGenerateAdviceUsesWeaknessPair(t *testing.T) {
	history := []TrendPoint{
		trendPoint(1, DimensionScores{DimensionEI: 0.9, DimensionSN: -0.8, DimensionTF: 0.3, DimensionJP: 0.3}),
		trendPoint(2, DimensionScores{DimensionEI: 0.9, DimensionSN: -0.8, DimensionTF: 0.3, DimensionJP: 0.3}),
	}
	analysis := AnalyzeTrend(history)
	advice := GenerateAdvice(analysis)

	if len(advice.ActionSuggestions) != 3 {
		t.Fatalf("suggestions=%d, want 3", len(advice.ActionSuggestions))
	}
	primary := analysis.PrimaryWeakness
	if !strings.Contains(advice.ActionSuggestions[0], string(primary.Dimension)) {
		t.Fatalf("first suggestion %q does not name the primary dimension", advice.ActionSuggestions[0])
	}
	if !strings.Contains(advice.ActionSuggestions[0], primary.WeaknessTitle) {
		t.Fatalf("first suggestion %q does not carry the weakness title", advice.ActionSuggestions[0])
	}
	if !strings.Contains(advice.ReflectionQuestion, primary.Cue) {
		t.Fatalf("reflection %q does not carry the primary cue", advice.ReflectionQuestion)
	}
	if len(advice.MicroPlan) != 7 {
		t.Fatalf("micro plan=%d days, want 7", len(advice.MicroPlan))
	}
	if !strings.Contains(advice.MicroPlan[5], string(primary.Dimension)) {
		t.Fatalf("day 6 %q should compare against the primary dimension", advice.MicroPlan[5])
	}
}
