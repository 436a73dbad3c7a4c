package engine

import (
	"fmt"
	"math"
	"time"
)

// TrendPoint is one completed session in time order (oldest first).
type TrendPoint struct {
	CreatedAt time.Time       `json:"createdAt"`
	Scores    DimensionScores `json:"scores"`
	MBTI      string          `json:"mbti,omitempty"`
}

type InsightLevel string

const (
	LevelLow    InsightLevel = "low"
	LevelMedium InsightLevel = "medium"
	LevelHigh   InsightLevel = "high"
)

type TrendInsight struct {
	Label   string       `json:"label"`
	Value   float64      `json:"value"`
	Level   InsightLevel `json:"level"`
	Summary string       `json:"summary"`
}

type RiskType string

const (
	RiskExtreme    RiskType = "extreme"
	RiskIndecision RiskType = "indecision"
	RiskVolatility RiskType = "volatility"
)

// AxisDiagnosis classifies one dimension of the latest session into exactly
// one risk type, with dimension- and risk-specific coaching copy.
type AxisDiagnosis struct {
	Dimension        Dimension `json:"dimension"`
	Score            float64   `json:"score"`
	Volatility       float64   `json:"volatility"`
	Trend            float64   `json:"trend"`
	DominantSide     string    `json:"dominantSide"`
	OppositeSide     string    `json:"oppositeSide"`
	RiskType         RiskType  `json:"riskType"`
	RiskScore        float64   `json:"riskScore"`
	WeaknessTitle    string    `json:"weaknessTitle"`
	WeaknessDetail   string    `json:"weaknessDetail"`
	ActionFocus      string    `json:"actionFocus"`
	ReflectionPrompt string    `json:"reflectionPrompt"`
	Metric           string    `json:"metric"`
	DayActionA       string    `json:"dayActionA"`
	DayActionB       string    `json:"dayActionB"`
	Cue              string    `json:"cue"`
}

type TrendAnalysis struct {
	Insights          []TrendInsight  `json:"insights"`
	Summary           string          `json:"summary"`
	Diagnoses         []AxisDiagnosis `json:"diagnoses"`
	PrimaryWeakness   *AxisDiagnosis  `json:"primaryWeakness"`
	SecondaryWeakness *AxisDiagnosis  `json:"secondaryWeakness"`
	LatestScores      DimensionScores `json:"latestScores"`
}

func insightLevel(value, low, high float64) InsightLevel {
	if value >= high {
		return LevelHigh
	}
	if value <= low {
		return LevelLow
	}
	return LevelMedium
}

func axisSides(dim Dimension) (positive, negative string) {
	switch dim {
	case DimensionEI:
		return "外向行动", "内向复盘"
	case DimensionSN:
		return "实感落地", "直觉探索"
	case DimensionTF:
		return "理性判断", "情感共情"
	case DimensionJP:
		return "结构收敛", "弹性探索"
	default:
		return "正向", "反向"
	}
}

// chooseRiskType scores the three risk candidates; volatility wins ties, then
// indecision, with extreme as the fallback.
func chooseRiskType(score, volatility float64) (RiskType, float64) {
	absScore := math.Abs(score)
	extremeRisk := math.Max(0, absScore-0.62) * 1.8
	indecisionRisk := math.Max(0, 0.18-absScore) * 2.2
	volatilityRisk := math.Max(0, volatility-0.26) * 2.0

	if volatilityRisk >= extremeRisk && volatilityRisk >= indecisionRisk {
		return RiskVolatility, volatilityRisk
	}
	if indecisionRisk >= extremeRisk {
		return RiskIndecision, indecisionRisk
	}
	return RiskExtreme, extremeRisk
}

func buildAxisDiagnosis(dim Dimension, score, volatility, trend float64) AxisDiagnosis {
	positive, negative := axisSides(dim)
	dominant, opposite := positive, negative
	if score < 0 {
		dominant, opposite = negative, positive
	}
	riskType, riskScore := chooseRiskType(score, volatility)

	copyKey := diagnosisKey{dim: dim, risk: riskType, positive: score >= 0}
	text, ok := diagnosisCopy[copyKey]
	if !ok {
		// Indecision and volatility copy does not split by pole.
		copyKey.positive = true
		text = diagnosisCopy[copyKey]
	}

	return AxisDiagnosis{
		Dimension:        dim,
		Score:            score,
		Volatility:       volatility,
		Trend:            trend,
		DominantSide:     dominant,
		OppositeSide:     opposite,
		RiskType:         riskType,
		RiskScore:        riskScore,
		WeaknessTitle:    text.title,
		WeaknessDetail:   text.detail,
		ActionFocus:      text.actionFocus,
		ReflectionPrompt: text.reflectionPrompt,
		Metric:           text.metric,
		DayActionA:       text.dayActionA,
		DayActionB:       text.dayActionB,
		Cue:              text.cue,
	}
}

// AnalyzeTrend computes the three scalar insights, per-dimension diagnoses for
// the latest session, and the ranked weakness pair driving advice generation.
// An empty history yields the documented fallback instead of failing.
func AnalyzeTrend(history []TrendPoint) TrendAnalysis {
	if len(history) == 0 {
		return TrendAnalysis{
			Insights:  []TrendInsight{},
			Summary:   "暂无历史数据，先完成一次测验。",
			Diagnoses: []AxisDiagnosis{},
		}
	}

	series := map[Dimension][]float64{}
	var allAbs []float64
	for _, point := range history {
		for _, dim := range Dimensions {
			series[dim] = append(series[dim], point.Scores[dim])
			allAbs = append(allAbs, math.Abs(point.Scores[dim]))
		}
	}

	longTermExtremity := mean(allAbs)

	stds := make([]float64, 0, len(Dimensions))
	for _, dim := range Dimensions {
		stds = append(stds, stdDev(series[dim]))
	}
	overallVolatility := mean(stds)

	recent := history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentSlopes := make([]float64, 0, len(Dimensions))
	for _, dim := range Dimensions {
		values := make([]float64, 0, len(recent))
		for _, point := range recent {
			values = append(values, point.Scores[dim])
		}
		recentSlopes = append(recentSlopes, slope(values))
	}
	recentSlope := mean(recentSlopes)

	extremitySummary := "你的偏好强度处于平衡区间。"
	if longTermExtremity > 0.65 {
		extremitySummary = "你的偏好强度较高，优势清晰，但场景切换成本也更高。"
	} else if longTermExtremity < 0.35 {
		extremitySummary = "你的适应性较强，但在关键时刻可能需要更快定向。"
	}

	volatilitySummary := "波动处于健康区间，可持续观察。"
	if overallVolatility > 0.42 {
		volatilitySummary = "近期波动较大，建议回看触发情境与压力源。"
	} else if overallVolatility < 0.18 {
		volatilitySummary = "整体稳定，可以进入更有挑战性的成长实验。"
	}

	slopeSummary := "近期趋势温和，处于调整期。"
	if recentSlope > 0.18 {
		slopeSummary = "近期整体向 E/S/T/J 方向提升，执行取向增强。"
	} else if recentSlope < -0.18 {
		slopeSummary = "近期整体向 I/N/F/P 方向移动，反思探索增强。"
	}

	insights := []TrendInsight{
		{Label: "长期极端度", Value: round4(longTermExtremity), Level: insightLevel(longTermExtremity, 0.35, 0.65), Summary: extremitySummary},
		{Label: "波动幅度", Value: round4(overallVolatility), Level: insightLevel(overallVolatility, 0.18, 0.42), Summary: volatilitySummary},
		{Label: "近期趋势", Value: round4(recentSlope), Level: insightLevel(math.Abs(recentSlope), 0.05, 0.18), Summary: slopeSummary},
	}

	latest := history[len(history)-1].Scores
	diagnoses := make([]AxisDiagnosis, 0, len(Dimensions))
	for _, dim := range Dimensions {
		values := make([]float64, 0, len(recent))
		for _, point := range recent {
			values = append(values, point.Scores[dim])
		}
		diagnoses = append(diagnoses, buildAxisDiagnosis(dim, latest[dim], stdDev(series[dim]), slope(values)))
	}

	// Stable sort by risk score descending; formula order already decided
	// in-dimension ties.
	for i := 1; i < len(diagnoses); i++ {
		for j := i; j > 0 && diagnoses[j].RiskScore > diagnoses[j-1].RiskScore; j-- {
			diagnoses[j], diagnoses[j-1] = diagnoses[j-1], diagnoses[j]
		}
	}

	analysis := TrendAnalysis{
		Insights:     insights,
		Summary:      fmt.Sprintf("基于 %d 次测验生成趋势分析。", len(history)),
		Diagnoses:    diagnoses,
		LatestScores: latest,
	}
	if len(diagnoses) > 0 {
		analysis.PrimaryWeakness = &diagnoses[0]
	}
	if len(diagnoses) > 1 {
		analysis.SecondaryWeakness = &diagnoses[1]
	}
	return analysis
}
