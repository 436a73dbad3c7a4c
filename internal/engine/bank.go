package engine

import "strconv"

// BankItem is one authored quiz item. The bank doubles as the source for both
// scorers: Dimension/Direction/ReverseScoring feed Likert scoring, Axis/Keyed
// feed the alternate axis scorer.
type BankItem struct {
	Code           string
	Text           string
	Dimension      Dimension
	Direction      int
	ReverseScoring bool
	Intent         Intent
	Theme          string
	Axis           Axis
	Keyed          Keyed
}

func item(code string, axis Axis, keyed Keyed, text string) BankItem {
	theme := string(axis) + "-primary"
	if keyed == KeyedNeg {
		theme = string(axis) + "-reverse"
	}
	return BankItem{
		Code:           code,
		Text:           text,
		Dimension:      Dimension(axis),
		Direction:      1,
		ReverseScoring: keyed == KeyedNeg,
		Intent:         intentForCode(code),
		Theme:          theme,
		Axis:           axis,
		Keyed:          keyed,
	}
}

// Items numbered 01..06 per axis are baseline; the rest probe depth.
func intentForCode(code string) Intent {
	if len(code) < 3 {
		return IntentBaseline
	}
	n, err := strconv.Atoi(code[2:])
	if err != nil || n <= 6 {
		return IntentBaseline
	}
	return IntentDepth
}

// QuestionBank is the immutable self-built item pool (non-clinical).
var QuestionBank = []BankItem{
	// EI: energy direction
	item("EI01", AxisEI, KeyedPos, "在聚会或团队活动中，我通常主动发起话题。"),
	item("EI02", AxisEI, KeyedNeg, "连续的社交安排会让我感到被消耗。"),
	item("EI03", AxisEI, KeyedPos, "与人讨论时我边说边想，思路会越说越清晰。"),
	item("EI04", AxisEI, KeyedNeg, "我更喜欢先独自把问题想透，再与别人交流。"),
	item("EI05", AxisEI, KeyedPos, "认识新朋友对我来说轻松且愉快。"),
	item("EI06", AxisEI, KeyedNeg, "独处的时间是我恢复能量的主要方式。"),
	item("EI07", AxisEI, KeyedPos, "周末空下来时，我倾向约人出门而不是宅在家。"),
	item("EI08", AxisEI, KeyedNeg, "在陌生场合我通常先观察，很少率先开口。"),
	item("EI09", AxisEI, KeyedPos, "工作卡住时，找人聊一聊比自己闷头想更有效。"),
	item("EI10", AxisEI, KeyedNeg, "长时间高强度互动之后，我需要明显的恢复期。"),
	item("EI11", AxisEI, KeyedPos, "我乐于在众人面前表达自己的想法。"),
	item("EI12", AxisEI, KeyedNeg, "即使与熟人相处，我也更享受安静的陪伴。"),

	// SN: information intake
	item("SN01", AxisSN, KeyedPos, "做决定时，我更信任可验证的事实与数据。"),
	item("SN02", AxisSN, KeyedNeg, "我经常被尚未发生的可能性吸引。"),
	item("SN03", AxisSN, KeyedPos, "我习惯按部就班地执行已被验证过的方法。"),
	item("SN04", AxisSN, KeyedNeg, "比起细节本身，我更关心细节背后的含义。"),
	item("SN05", AxisSN, KeyedPos, "描述事情时，我倾向给出具体的时间、地点和数字。"),
	item("SN06", AxisSN, KeyedNeg, "我常常凭直觉跳到结论，再回头找证据。"),
	item("SN07", AxisSN, KeyedPos, "空想让我不安，我需要看到可落地的步骤。"),
	item("SN08", AxisSN, KeyedNeg, "我喜欢把不相关的概念联系起来，寻找新模式。"),
	item("SN09", AxisSN, KeyedPos, "评估方案时，我首先看它过去是否被成功使用过。"),
	item("SN10", AxisSN, KeyedNeg, "规划未来比复盘过去更让我兴奋。"),
	item("SN11", AxisSN, KeyedPos, "我留意环境中的具体变化，比如摆设或流程的调整。"),
	item("SN12", AxisSN, KeyedNeg, "读书或看电影时，我更在意主题与隐喻而非情节细节。"),

	// TF: decision criteria
	item("TF01", AxisTF, KeyedPos, "做艰难决定时，我优先考虑逻辑一致性而非个人感受。"),
	item("TF02", AxisTF, KeyedNeg, "我很难忽略决定对具体的人造成的影响。"),
	item("TF03", AxisTF, KeyedPos, "指出别人的错误时，我更看重说得对，而不是说得委婉。"),
	item("TF04", AxisTF, KeyedNeg, "维持关系的和谐对我比赢得争论更重要。"),
	item("TF05", AxisTF, KeyedPos, "我欣赏能在压力下保持客观中立的人。"),
	item("TF06", AxisTF, KeyedNeg, "朋友找我倾诉时，我先安抚情绪，再谈解决办法。"),
	item("TF07", AxisTF, KeyedPos, "公平意味着同一套标准适用于所有人，包括我自己。"),
	item("TF08", AxisTF, KeyedNeg, "我会为照顾别人的处境而调整自己的标准。"),
	item("TF09", AxisTF, KeyedPos, "讨论问题时，我习惯先拆解结构再下判断。"),
	item("TF10", AxisTF, KeyedNeg, "团队氛围紧张时，我的注意力很难放在任务本身。"),
	item("TF11", AxisTF, KeyedPos, "比起被喜欢，我更在意被认为可靠和专业。"),
	item("TF12", AxisTF, KeyedNeg, "做完理性的决定后，我仍会反复想它是否伤害了谁。"),

	// JP: outer-world orientation
	item("JP01", AxisJP, KeyedPos, "我喜欢提前规划，并按计划推进。"),
	item("JP02", AxisJP, KeyedNeg, "临时变化让我兴奋多过让我焦虑。"),
	item("JP03", AxisJP, KeyedPos, "未完成的事项挂在清单上会让我难以放松。"),
	item("JP04", AxisJP, KeyedNeg, "我常常在截止日期临近时才进入最佳状态。"),
	item("JP05", AxisJP, KeyedPos, "出行前我会把行程和备选方案都安排好。"),
	item("JP06", AxisJP, KeyedNeg, "我倾向让选择保持开放，尽量晚做决定。"),
	item("JP07", AxisJP, KeyedPos, "明确的规则和流程让我工作得更安心。"),
	item("JP08", AxisJP, KeyedNeg, "严格的日程表让我觉得被束缚。"),
	item("JP09", AxisJP, KeyedPos, "我会把大目标拆成带日期的小步骤逐一完成。"),
	item("JP10", AxisJP, KeyedNeg, "一边做一边调整方向，比先定完整计划更适合我。"),
	item("JP11", AxisJP, KeyedPos, "事情收尾并归档后，我才觉得真正结束。"),
	item("JP12", AxisJP, KeyedNeg, "同时保留几条未收口的线索不会让我不安。"),

	// AT: optional stability axis, never enters Likert dimension scoring
	item("AT01", AxisAT, KeyedPos, "被批评之后，我能较快恢复平静。"),
	item("AT02", AxisAT, KeyedNeg, "我容易反复回想自己说错的话。"),
	item("AT03", AxisAT, KeyedPos, "面对不确定的结果，我依然睡得安稳。"),
	item("AT04", AxisAT, KeyedNeg, "压力大的时候，我的情绪起伏会明显变大。"),
}

// BankByDimension returns the Likert-scorable items (AT excluded) for one
// dimension.
func BankByDimension(dim Dimension) []BankItem {
	out := make([]BankItem, 0, 12)
	for _, it := range QuestionBank {
		if it.Axis != AxisAT && it.Dimension == dim {
			out = append(out, it)
		}
	}
	return out
}

// LikertChoiceLabels are the five scale labels shown to the user.
var LikertChoiceLabels = []string{"非常不同意", "不同意", "中立", "同意", "非常同意"}
