package engine

// Coaching copy per (dimension, risk type, pole). Indecision and volatility
// entries are pole-neutral and keyed with positive=true.

type diagnosisKey struct {
	dim      Dimension
	risk     RiskType
	positive bool
}

type diagnosisText struct {
	title            string
	detail           string
	actionFocus      string
	reflectionPrompt string
	metric           string
	dayActionA       string
	dayActionB       string
	cue              string
}

var diagnosisCopy = map[diagnosisKey]diagnosisText{
	{DimensionEI, RiskExtreme, true}: {
		title:            "外向输出过载",
		detail:           "互动与表达强度偏高，容易在未充分整理信息时就推进决策。",
		actionFocus:      "重要沟通前先写 3 行“目标-风险-边界”，再发言或拍板。",
		reflectionPrompt: "最近一次你在高社交状态下快速做决定，忽略了哪个真实需求？",
		metric:           "记录每天2次关键沟通后的能量值（0-10）与恢复时长",
		dayActionA:       "今天在一场关键沟通前，先写3行提纲，再进入讨论。",
		dayActionB:       "将一次决策复盘为“事实-判断-行动”，检查是否有跳步。",
		cue:              "先写后说",
	},
	{DimensionEI, RiskExtreme, false}: {
		title:            "内向闭环过深",
		detail:           "倾向独立消化问题，导致求助与信息同步时机偏晚。",
		actionFocus:      "每天主动发起1次10分钟同步，并明确提出1个具体请求。",
		reflectionPrompt: "最近一次你本可求助却选择独自扛下，代价是什么？",
		metric:           "统计“主动求助次数”与“问题关闭耗时”",
		dayActionA:       "挑一个卡点问题，写出3个可被协助的具体子问题并发起沟通。",
		dayActionB:       "复盘一次“自己扛”的场景，记录若提前同步可省下什么成本。",
		cue:              "先同步再闭环",
	},
	{DimensionEI, RiskIndecision, true}: {
		title:            "社交边界摇摆",
		detail:           "外向与内向节奏切换频繁，专注和恢复边界不清晰。",
		actionFocus:      "固定“深度工作时段+回应时段”，降低无意识切换。",
		reflectionPrompt: "最近一次你说“都可以”时，真正担心失去的是什么？",
		metric:           "记录被打断次数与单段专注时长",
		dayActionA:       "连续90分钟深度工作，期间关闭即时通讯提醒。",
		dayActionB:       "设置固定社交窗口，仅在窗口内处理低优先级消息。",
		cue:              "边界先行",
	},
	{DimensionEI, RiskVolatility, true}: {
		title:            "能量节奏波动",
		detail:           "同类情境下状态起伏偏大，容易在低能量时硬推任务。",
		actionFocus:      "建立能量阈值：当能量<4分时先恢复，再做高风险决策。",
		reflectionPrompt: "你最近一次“明知状态不佳却继续硬撑”的后果是什么？",
		metric:           "记录“低能量硬撑次数”与当日决策质量评分",
		dayActionA:       "设置一次“能量<4立即暂停15分钟”的触发规则并执行。",
		dayActionB:       "晚间复盘今天3次状态变化，标注触发原因。",
		cue:              "先稳能量",
	},

	{DimensionSN, RiskExtreme, true}: {
		title:            "细节驱动过强",
		detail:           "执行细节扎实，但容易低估长期想象与新可能性。",
		actionFocus:      "每个任务开工前补写1条“未来3个月可能性”假设。",
		reflectionPrompt: "最近一次你因为追求稳妥而放弃尝试的新路径是什么？",
		metric:           "记录“新增备选方案数量”与“被采纳比例”",
		dayActionA:       "为当前项目新增2个非直觉方案，并写清风险与收益。",
		dayActionB:       "复盘一次“按旧经验做”的决策，评估是否错过创新收益。",
		cue:              "先想远一点",
	},
	{DimensionSN, RiskExtreme, false}: {
		title:            "想象先行过快",
		detail:           "洞察和联想丰富，但容易在落地细节上欠账。",
		actionFocus:      "把每个想法拆成“今天可执行的20分钟第一步”。",
		reflectionPrompt: "最近一次你有好想法却迟迟未落地，阻碍点是什么？",
		metric:           "记录“想法转任务率”与“48小时内启动率”",
		dayActionA:       "选择1个想法，写出“负责人-截止时间-验收标准”。",
		dayActionB:       "把今天的抽象想法转成1页可执行清单并开始第一步。",
		cue:              "先落地一步",
	},
	{DimensionSN, RiskIndecision, true}: {
		title:            "感知策略不稳定",
		detail:           "在事实与直觉之间反复切换，决策标准不连续。",
		actionFocus:      "决策时固定使用“双证据法”：1条事实 + 1条趋势推断。",
		reflectionPrompt: "最近一次你卡在“信息还不够”时，真正缺的是事实还是判断框架？",
		metric:           "记录每次决策中的“事实证据数/趋势假设数”",
		dayActionA:       "用双证据法完成一次决策记录卡。",
		dayActionB:       "复盘最近一次判断失误，标注是事实不足还是推断过度。",
		cue:              "双证据法",
	},
	{DimensionSN, RiskVolatility, true}: {
		title:            "信息处理波动",
		detail:           "同类任务中时而过度细节、时而过度抽象，导致节奏断裂。",
		actionFocus:      "先定信息层级：事实层(当下) -> 假设层(未来) -> 行动层(本周)。",
		reflectionPrompt: "你最近一次“看起来很忙却推进不稳”的核心断点在哪一层？",
		metric:           "记录任务中“返工次数”与“因信息层级不清导致的延迟”",
		dayActionA:       "把一个复杂任务拆成事实/假设/行动三层后再执行。",
		dayActionB:       "晚上复盘1次返工，写下应在何时补充哪一层信息。",
		cue:              "三层信息",
	},

	{DimensionTF, RiskExtreme, true}: {
		title:            "结论优先过快",
		detail:           "逻辑和效率强，但在关系温度与接收感上可能偏弱。",
		actionFocus:      "给建议前先做一次“感受复述”，再给结论。",
		reflectionPrompt: "最近一次你“说得对但对方没接受”，漏掉了哪一步共情？",
		metric:           "记录沟通中“先共情后建议”的执行率",
		dayActionA:       "今天至少1次先复述对方感受，再给执行建议。",
		dayActionB:       "复盘一次冲突沟通，改写成“感受-事实-请求”版本。",
		cue:              "先共情后结论",
	},
	{DimensionTF, RiskExtreme, false}: {
		title:            "关系优先过度",
		detail:           "重视感受与和谐，但可能推迟必要判断与边界设定。",
		actionFocus:      "决策前固定写下3条客观标准，再按标准给出结论。",
		reflectionPrompt: "最近一次你为避免冲突而延后决定，带来了什么隐性成本？",
		metric:           "记录“按标准决策次数”与“延迟决策成本”",
		dayActionA:       "使用3标准法完成一次你本来想回避的决定。",
		dayActionB:       "把一次“拖着不说”的问题写成明确边界并沟通。",
		cue:              "标准先行",
	},
	{DimensionTF, RiskIndecision, true}: {
		title:            "判断标准摇摆",
		detail:           "在“讲逻辑”与“顾感受”之间切换，容易两边都不满意。",
		actionFocus:      "关键决策采用“权重表”：逻辑60% + 关系40%（可调）。",
		reflectionPrompt: "最近一次你反复改口，是因为标准不清还是立场不稳？",
		metric:           "记录每次决策的“逻辑权重/关系权重”",
		dayActionA:       "选一件待决事项，先设权重再做判断。",
		dayActionB:       "将一次沟通改写成“事实-影响-请求”三句式。",
		cue:              "权重决策",
	},
	{DimensionTF, RiskVolatility, true}: {
		title:            "情理切换波动",
		detail:           "同类议题中判断风格起伏较大，团队预期难稳定。",
		actionFocus:      "建立“决策前30秒校准”：先确认标准，再进入沟通。",
		reflectionPrompt: "最近一次你在同类问题上前后标准不一，触发因素是什么？",
		metric:           "记录“决策前校准”执行率与复盘满意度",
		dayActionA:       "今天每次关键讨论前先写下“本次标准”。",
		dayActionB:       "复盘一次标准变化，识别是压力、关系还是信息不足导致。",
		cue:              "先校准标准",
	},

	{DimensionJP, RiskExtreme, true}: {
		title:            "计划刚性过强",
		detail:           "收敛推进能力强，但可能降低弹性与新信息吸收速度。",
		actionFocus:      "每天预留30分钟“无脚本探索”，允许方案调整。",
		reflectionPrompt: "最近一次你坚持原计划却错过更优解，信号是什么时候出现的？",
		metric:           "记录“按计划执行”与“基于新信息调整”比例",
		dayActionA:       "给当前计划设置1个“可调整检查点”。",
		dayActionB:       "复盘一次临场变化，写下如果更早调整会怎样。",
		cue:              "计划可调整",
	},
	{DimensionJP, RiskExtreme, false}: {
		title:            "收尾能力欠稳",
		detail:           "探索弹性强，但可能在截止、收口与优先级上失焦。",
		actionFocus:      "每天设置1个“必须收尾任务”，并绑定明确截止时间。",
		reflectionPrompt: "最近一次你拖到最后才冲刺，最早的预警信号是什么？",
		metric:           "记录“必须收尾任务完成率”与“延期次数”",
		dayActionA:       "今天先完成1件必须收尾任务，再开启探索任务。",
		dayActionB:       "把一个开放任务切成“今天必做/可选延后”两栏。",
		cue:              "先收尾再扩展",
	},
	{DimensionJP, RiskIndecision, true}: {
		title:            "推进节奏犹豫",
		detail:           "在“先定再做”与“边做边调”间反复，导致执行效率下降。",
		actionFocus:      "采用“15分钟决定法”：限定时间做当前最优决策。",
		reflectionPrompt: "最近一次你迟迟不定，是担心决策错误还是承担后果？",
		metric:           "记录“15分钟决定法”执行次数与推进效率",
		dayActionA:       "挑1件小决策，限定15分钟内拍板并执行。",
		dayActionB:       "复盘一次延迟决策，写出下次可提前做的1步。",
		cue:              "限时决策",
	},
	{DimensionJP, RiskVolatility, true}: {
		title:            "执行节奏波动",
		detail:           "推进速度与计划稳定度起伏较大，产出质量受情境影响明显。",
		actionFocus:      "建立“日计划-午检查-晚收尾”三段节奏，减少临场失控。",
		reflectionPrompt: "你最近一次节奏失控，是因为计划过满还是优先级混乱？",
		metric:           "记录“中午检查完成率”与“当日收尾质量”",
		dayActionA:       "今天中午做一次5分钟进度检查并重排优先级。",
		dayActionB:       "晚间收尾时写下1条明天第一优先任务。",
		cue:              "三段节奏",
	},
}
