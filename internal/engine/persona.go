package engine

import "math"

type ExpressionStyle string

const (
	ExpressionReserved   ExpressionStyle = "reserved"
	ExpressionBalanced   ExpressionStyle = "balanced"
	ExpressionExpressive ExpressionStyle = "expressive"
)

type TrustStyle string

const (
	TrustGuarded   TrustStyle = "guarded"
	TrustSelective TrustStyle = "selective"
	TrustOpen      TrustStyle = "open"
)

// PersonaModel is derived fresh from the full session history on every call;
// it is never persisted incrementally.
type PersonaModel struct {
	Archetype           string          `json:"archetype"`
	VulnerableDimension Dimension       `json:"vulnerableDimension"`
	GrowthDimension     Dimension       `json:"growthDimension"`
	StableDimension     Dimension       `json:"stableDimension"`
	ContradictionIndex  float64         `json:"contradictionIndex"`
	ReflectionDepth     float64         `json:"reflectionDepth"`
	Confidence          float64         `json:"confidence"`
	ExpressionStyle     ExpressionStyle `json:"expressionStyle"`
	TrustStyle          TrustStyle      `json:"trustStyle"`
	CoreDrivers         []string        `json:"coreDrivers"`
	NarrativeSeed       string          `json:"narrativeSeed"`
}

// HistorySession is one completed session as the persona builder sees it.
type HistorySession struct {
	MBTI     string
	Scores   DimensionScores
	Behavior *BehaviorStats
}

var archetypeByType = map[string]string{
	"INTJ": "战略构建者",
	"INTP": "洞察分析者",
	"ENTJ": "目标推进者",
	"ENTP": "创新辩证者",
	"INFJ": "愿景整合者",
	"INFP": "价值守护者",
	"ENFJ": "关系引导者",
	"ENFP": "灵感点燃者",
	"ISTJ": "秩序执行者",
	"ISFJ": "稳定照护者",
	"ESTJ": "结构组织者",
	"ESFJ": "群体协同者",
	"ISTP": "冷静解构者",
	"ISFP": "感受创作者",
	"ESTP": "现场行动者",
	"ESFP": "氛围激活者",
}

type resolvedBehavior struct {
	extremity          float64
	consistency        float64
	neutrality         float64
	reverseSensitivity float64
	completionPace     float64
}

// resolveBehavior fills missing behavior blobs with neutral defaults so a
// sparse history still yields a coherent persona.
func resolveBehavior(b *BehaviorStats) resolvedBehavior {
	out := resolvedBehavior{extremity: 0.5, consistency: 0.5, neutrality: 0.3, reverseSensitivity: 0.25, completionPace: 0.5}
	if b == nil {
		return out
	}
	out.extremity = clamp01(b.Extremity)
	out.consistency = clamp01(b.Consistency)
	out.neutrality = clamp01(b.Neutrality)
	out.reverseSensitivity = clamp01(b.ReverseSensitivity)
	if b.CompletionPace != nil {
		out.completionPace = clamp01(*b.CompletionPace)
	}
	return out
}

func archetypeFor(avg DimensionScores, behavior resolvedBehavior) string {
	code := ""
	for _, dim := range Dimensions {
		positive, negative := dim.Poles()
		if avg[dim] >= 0 {
			code += positive
		} else {
			code += negative
		}
	}
	base, ok := archetypeByType[code]
	if !ok {
		base = "综合平衡者"
	}
	if behavior.reverseSensitivity > 0.6 {
		return base + "（内在冲突期）"
	}
	if behavior.consistency > 0.7 {
		return base + "（稳定发展期）"
	}
	return base
}

func maxDimension(values map[Dimension]float64) Dimension {
	best := Dimensions[0]
	for _, dim := range Dimensions[1:] {
		if values[dim] > values[best] {
			best = dim
		}
	}
	return best
}

func buildDrivers(avg DimensionScores, behavior resolvedBehavior) []string {
	drivers := []string{}
	if avg[DimensionEI] > 0.25 {
		drivers = append(drivers, "通过对外互动与反馈获取推进动力")
	}
	if avg[DimensionEI] < -0.25 {
		drivers = append(drivers, "通过独处反思沉淀判断")
	}
	if avg[DimensionSN] > 0.25 {
		drivers = append(drivers, "依赖事实与经验建立安全感")
	}
	if avg[DimensionSN] < -0.25 {
		drivers = append(drivers, "依赖可能性与意义感定位方向")
	}
	if avg[DimensionTF] > 0.25 {
		drivers = append(drivers, "通过原则与逻辑维持边界")
	}
	if avg[DimensionTF] < -0.25 {
		drivers = append(drivers, "通过关系与感受校准决策")
	}
	if avg[DimensionJP] > 0.25 {
		drivers = append(drivers, "通过计划与收束降低不确定焦虑")
	}
	if avg[DimensionJP] < -0.25 {
		drivers = append(drivers, "通过弹性与留白保持创造空间")
	}
	if behavior.neutrality > 0.45 {
		drivers = append(drivers, "在模糊阶段倾向先观察再判断")
	}
	if len(drivers) > 3 {
		drivers = drivers[:3]
	}
	return drivers
}

// BuildPersonaModel diagnoses the user's stable/vulnerable/growth dimensions
// and composite indices from all completed sessions (oldest first).
func BuildPersonaModel(history []HistorySession) PersonaModel {
	if len(history) == 0 {
		return PersonaModel{
			Archetype:           "初始探索者",
			VulnerableDimension: DimensionTF,
			GrowthDimension:     DimensionEI,
			StableDimension:     DimensionSN,
			ContradictionIndex:  0.25,
			ReflectionDepth:     0.45,
			Confidence:          0.35,
			ExpressionStyle:     ExpressionBalanced,
			TrustStyle:          TrustSelective,
			CoreDrivers:         []string{"正在建立第一版自我人格地图"},
			NarrativeSeed:       "你当前仍在形成稳定偏好，后续题目会同时包含基础题和深挖题。",
		}
	}

	avgScores := zeroScores()
	volatility := map[Dimension]float64{}
	signFlipRate := map[Dimension]float64{}
	for _, dim := range Dimensions {
		values := make([]float64, 0, len(history))
		for _, session := range history {
			values = append(values, clamp(session.Scores[dim], -1, 1))
		}
		avgScores[dim] = round4(mean(values))
		volatility[dim] = round4(stdDev(values))
		if len(values) > 1 {
			flips := 0
			for i := 1; i < len(values); i++ {
				if sign(values[i]) != sign(values[i-1]) {
					flips++
				}
			}
			signFlipRate[dim] = float64(flips) / float64(len(values)-1)
		}
	}

	behaviors := make([]resolvedBehavior, 0, len(history))
	for _, session := range history {
		behaviors = append(behaviors, resolveBehavior(session.Behavior))
	}
	avgBehavior := resolvedBehavior{
		extremity:          meanOf(behaviors, func(b resolvedBehavior) float64 { return b.extremity }),
		consistency:        meanOf(behaviors, func(b resolvedBehavior) float64 { return b.consistency }),
		neutrality:         meanOf(behaviors, func(b resolvedBehavior) float64 { return b.neutrality }),
		reverseSensitivity: meanOf(behaviors, func(b resolvedBehavior) float64 { return b.reverseSensitivity }),
		completionPace:     meanOf(behaviors, func(b resolvedBehavior) float64 { return b.completionPace }),
	}

	stableScores := map[Dimension]float64{}
	vulnerableScores := map[Dimension]float64{}
	for _, dim := range Dimensions {
		stableScores[dim] = math.Abs(avgScores[dim])*0.65 + (1-volatility[dim])*0.25 + (1-signFlipRate[dim])*0.1
		vulnerableScores[dim] = volatility[dim]*0.55 + signFlipRate[dim]*0.25 + (1-math.Abs(avgScores[dim]))*0.2
	}

	stableDimension := maxDimension(stableScores)
	vulnerableDimension := maxDimension(vulnerableScores)

	// Growth is the runner-up vulnerability: damp the winner and re-select.
	growthCandidates := map[Dimension]float64{}
	for _, dim := range Dimensions {
		v := vulnerableScores[dim]
		if dim == vulnerableDimension {
			v *= 0.8
		}
		growthCandidates[dim] = v
	}
	growthDimension := maxDimension(growthCandidates)

	flipValues := make([]float64, 0, len(Dimensions))
	stableValues := make([]float64, 0, len(Dimensions))
	for _, dim := range Dimensions {
		flipValues = append(flipValues, signFlipRate[dim])
		stableValues = append(stableValues, stableScores[dim])
	}

	contradictionIndex := round4(clamp01(
		avgBehavior.reverseSensitivity*0.55 + mean(flipValues)*0.3 + (1-avgBehavior.consistency)*0.25))
	reflectionDepth := round4(clamp01(
		avgBehavior.neutrality*0.25 + contradictionIndex*0.35 + (1-mean(stableValues))*0.2 + avgBehavior.extremity*0.2))
	confidence := round4(clamp01(
		mean(stableValues)*0.5 + avgBehavior.consistency*0.35 + (1-contradictionIndex)*0.25))

	expressionStyle := ExpressionBalanced
	if avgScores[DimensionEI] > 0.28 {
		expressionStyle = ExpressionExpressive
	} else if avgScores[DimensionEI] < -0.28 {
		expressionStyle = ExpressionReserved
	}

	trustStyle := TrustSelective
	switch {
	case avgScores[DimensionTF] < -0.2 && avgBehavior.neutrality > 0.35:
		trustStyle = TrustOpen
	case avgScores[DimensionTF] > 0.2 && contradictionIndex > 0.45:
		trustStyle = TrustGuarded
	}

	narrativeSeed := "你处在整合阶段，后续题目将帮助你识别触发点与稳定偏好。"
	switch {
	case contradictionIndex > 0.58:
		narrativeSeed = "你在多场景中存在价值拉扯，后续题目将继续聚焦情境冲突与行为选择。"
	case confidence > 0.68:
		narrativeSeed = "你的人格结构正趋于稳定，后续会更多探索深层情绪驱动与关系模式。"
	}

	return PersonaModel{
		Archetype:           archetypeFor(avgScores, avgBehavior),
		VulnerableDimension: vulnerableDimension,
		GrowthDimension:     growthDimension,
		StableDimension:     stableDimension,
		ContradictionIndex:  contradictionIndex,
		ReflectionDepth:     reflectionDepth,
		Confidence:          confidence,
		ExpressionStyle:     expressionStyle,
		TrustStyle:          trustStyle,
		CoreDrivers:         buildDrivers(avgScores, avgBehavior),
		NarrativeSeed:       narrativeSeed,
	}
}

func meanOf(list []resolvedBehavior, pick func(resolvedBehavior) float64) float64 {
	values := make([]float64, 0, len(list))
	for _, b := range list {
		values = append(values, pick(b))
	}
	return mean(values)
}
