package engine

import "fmt"

// Advice turns a trend analysis into a week of concrete coaching output.
type Advice struct {
	ActionSuggestions  []string `json:"actionSuggestions"`
	ReflectionQuestion string   `json:"reflectionQuestion"`
	MicroPlan          []string `json:"microPlan"`
}

func trendActionSuggestion(trendValue float64, volatilityLevel InsightLevel) string {
	if volatilityLevel == LevelHigh {
		return "本周优先“稳态化”，每天固定同一时段做复盘，先降波动再提强度。"
	}
	if trendValue > 0.12 {
		return "近期执行取向走强，建议在推进前补1步关系校准，避免“效率高但摩擦大”。"
	}
	if trendValue < -0.12 {
		return "近期探索取向走强，建议为每个新想法绑定最小可交付，避免只想不落地。"
	}
	return "趋势平稳期最适合精修习惯：保持1个确定性任务 + 1个探索性任务的双轨节奏。"
}

// GenerateAdvice ranks the weakness pair from the analysis into suggestions,
// a reflection question, and a seven day micro plan. Without any diagnosed
// weakness it returns an onboarding plan instead.
func GenerateAdvice(analysis TrendAnalysis) Advice {
	primary := analysis.PrimaryWeakness
	secondary := analysis.SecondaryWeakness
	if secondary == nil {
		secondary = primary
	}

	if primary == nil || secondary == nil {
		return Advice{
			ActionSuggestions: []string{
				"先完成一次完整测验，系统会根据你的弱项生成针对性训练建议。",
				"本周先记录3次关键决策情境，作为个性化建议的输入。",
				"保持每天1次简短复盘，积累行为样本后再做精修。",
			},
			ReflectionQuestion: "你最近在哪个场景最容易偏离自己的节奏？当时是什么触发了你？",
			MicroPlan: []string{
				"Day1：记录今天一次关键决策的触发-反应-结果。",
				"Day2：回看昨天记录，找出一个可改进的微动作。",
				"Day3：在类似场景里尝试这个微动作并记录效果。",
				"Day4：与一位信任的人讨论你的观察。",
				"Day5：继续执行并补充第二条改进动作。",
				"Day6：做一次短测，查看变化。",
				"Day7：总结有效动作，形成下周执行清单。",
			},
		}
	}

	var trendValue float64
	volatilityLevel := LevelMedium
	extremeLevel := LevelMedium
	if len(analysis.Insights) >= 3 {
		extremeLevel = analysis.Insights[0].Level
		volatilityLevel = analysis.Insights[1].Level
		trendValue = analysis.Insights[2].Value
	}

	actions := []string{
		fmt.Sprintf("核心弱点（%s）：%s。本周重点：%s", primary.Dimension, primary.WeaknessTitle, primary.ActionFocus),
		fmt.Sprintf("次级弱点（%s）：%s。补强动作：%s", secondary.Dimension, secondary.WeaknessTitle, secondary.ActionFocus),
		trendActionSuggestion(trendValue, volatilityLevel),
	}
	if extremeLevel == LevelHigh {
		actions[2] += " 同时每周安排1次“反偏好任务”，刻意练习你的对侧能力。"
	}

	reflection := fmt.Sprintf("%s 如果重来一次，你会在第几步改用“%s”？", primary.ReflectionPrompt, primary.Cue)

	microPlan := []string{
		fmt.Sprintf("Day1：建立基线（%s）：%s。", primary.Dimension, primary.Metric),
		fmt.Sprintf("Day2：主练习A：%s", primary.DayActionA),
		fmt.Sprintf("Day3：主练习B：%s", primary.DayActionB),
		fmt.Sprintf("Day4：次练习A（%s）：%s", secondary.Dimension, secondary.DayActionA),
		fmt.Sprintf("Day5：次练习B（%s）：%s", secondary.Dimension, secondary.DayActionB),
		fmt.Sprintf("Day6：完成一次短测并对比 %s/%s 两维变化。", primary.Dimension, secondary.Dimension),
		fmt.Sprintf("Day7：总结本周最有效的2个动作，确定下周继续保留的1条规则（建议：%s）。", primary.Cue),
	}

	return Advice{
		ActionSuggestions:  actions,
		ReflectionQuestion: reflection,
		MicroPlan:          microPlan,
	}
}
