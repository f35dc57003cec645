package catalog

// defaultModules 线上课程目录。ID 一经发布不可更改
var defaultModules = []ModuleDefinition{
	{
		ID:          "50-30-20",
		Name:        "50/30/20 预算法则",
		Description: "用 50/30/20 法则拆分每月收入：必需、想要、储蓄",
		PassPercent: 100,
		Questions: []Question{
			{
				ID:     "b1",
				Prompt: "按照 50/30/20 法则，收入中应有多少比例用于储蓄和还债？",
				Options: []string{
					"50%", "30%", "20%", "10%",
				},
				CorrectIndex: 2,
				Explanation:  "法则建议 50% 必需开支、30% 想要开支、20% 储蓄与还债。",
			},
			{
				ID:     "b2",
				Prompt: "下列哪项属于\"必需\"开支？",
				Options: []string{
					"视频网站会员", "房租", "演唱会门票", "新款球鞋",
				},
				CorrectIndex: 1,
				Explanation:  "房租是维持生活必须支付的固定开支。",
			},
			{
				ID:     "b3",
				Prompt: "月收入 3000 元，按法则\"想要\"开支最多是多少？",
				Options: []string{
					"600 元", "900 元", "1500 元", "300 元",
				},
				CorrectIndex: 1,
				Explanation:  "30% × 3000 = 900 元。",
			},
		},
	},
	{
		ID:          "insurance",
		Name:        "保险入门",
		Description: "认识常见险种：医疗、车险、寿险与免赔额的含义",
		PassPercent: 100,
		Questions: []Question{
			{
				ID:     "i1",
				Prompt: "\"免赔额\"指的是什么？",
				Options: []string{
					"保险公司每年赔付的上限",
					"理赔前需要自己先承担的金额",
					"每月缴纳的保费",
					"退保时拿回的金额",
				},
				CorrectIndex: 1,
				Explanation:  "免赔额是保险开始赔付前投保人自行承担的部分。",
			},
			{
				ID:     "i2",
				Prompt: "免赔额越高，通常保费会怎样变化？",
				Options: []string{
					"越高", "越低", "不变", "无法确定",
				},
				CorrectIndex: 1,
				Explanation:  "自担风险更多，保险公司收取的保费通常更低。",
			},
			{
				ID:     "i3",
				Prompt: "下列哪种情况最适合购买定期寿险？",
				Options: []string{
					"单身且无负债",
					"有房贷且有家人依赖你的收入",
					"已退休且子女独立",
					"只想投资理财",
				},
				CorrectIndex: 1,
				Explanation:  "定期寿险用于在家庭依赖期内对冲收入中断风险。",
			},
		},
	},
	{
		ID:          "retirement-accounts",
		Name:        "退休账户",
		Description: "雇主匹配、税收递延与复利增长的基础概念",
		PassPercent: 100,
		Questions: []Question{
			{
				ID:     "r1",
				Prompt: "雇主提供缴费匹配时，最优先的做法是？",
				Options: []string{
					"完全不参加",
					"至少缴到拿满匹配",
					"全部买活期存款",
					"等年纪大了再说",
				},
				CorrectIndex: 1,
				Explanation:  "匹配相当于立即 100% 的回报，放弃等于丢掉免费的钱。",
			},
			{
				ID:     "r2",
				Prompt: "复利增长意味着什么？",
				Options: []string{
					"利息只按本金计算",
					"收益再投入后也开始产生收益",
					"每年收益固定不变",
					"本金每年翻倍",
				},
				CorrectIndex: 1,
				Explanation:  "复利让收益本身继续生息，时间越长效果越显著。",
			},
			{
				ID:     "r3",
				Prompt: "越早开始为退休储蓄的最大优势是？",
				Options: []string{
					"手续费更低",
					"复利有更长的时间发挥作用",
					"政府补贴更多",
					"可以随时取出",
				},
				CorrectIndex: 1,
				Explanation:  "时间是复利最重要的变量。",
			},
		},
	},
	{
		ID:          "credit-score",
		Name:        "信用分数",
		Description: "信用记录如何影响借贷成本，以及如何维持良好信用",
		PassPercent: 100,
		Questions: []Question{
			{
				ID:     "c1",
				Prompt: "对信用分数影响最大的因素通常是？",
				Options: []string{
					"按时还款记录", "工作单位", "存款余额", "年龄",
				},
				CorrectIndex: 0,
				Explanation:  "还款历史是各类信用评分模型中权重最高的因素。",
			},
			{
				ID:     "c2",
				Prompt: "信用卡额度用得越满，对信用分数的影响是？",
				Options: []string{
					"没有影响", "通常是负面的", "一定是正面的", "只影响额度",
				},
				CorrectIndex: 1,
				Explanation:  "过高的额度使用率通常被视为偿付压力的信号。",
			},
			{
				ID:     "c3",
				Prompt: "信用分数更高通常意味着？",
				Options: []string{
					"贷款利率更低", "贷款利率更高", "无法办理贷款", "必须多交税",
				},
				CorrectIndex: 0,
				Explanation:  "良好的信用让借款成本更低、审批更容易。",
			},
		},
	},
	{
		ID:          "car-buying",
		Name:        "购车体验",
		Description: "沉浸式体验：贷款利率、首付与总持有成本的权衡",
		PassPercent: 80,
		Questions: []Question{
			{
				ID:     "car1",
				Prompt: "车贷期限越长（月供更低），总利息通常会？",
				Options: []string{
					"更少", "更多", "不变", "为零",
				},
				CorrectIndex: 1,
				Explanation:  "期限拉长意味着利息计提的时间更长，总成本更高。",
			},
			{
				ID:     "car2",
				Prompt: "新车落地后第一年价值通常会？",
				Options: []string{
					"上涨", "大幅折旧", "保持不变", "翻倍",
				},
				CorrectIndex: 1,
				Explanation:  "新车第一年折旧最快，是购车成本的重要部分。",
			},
			{
				ID:     "car3",
				Prompt: "除车价外，下列哪项属于持有成本？",
				Options: []string{
					"保险和保养", "车贷首付", "购置税", "以上都不是",
				},
				CorrectIndex: 0,
				Explanation:  "保险、保养、油费等持续性开支构成总持有成本。",
			},
			{
				ID:     "car4",
				Prompt: "更高的首付通常带来？",
				Options: []string{
					"更高的月供", "更低的月供和更少的利息", "更长的贷款期限", "更低的车价",
				},
				CorrectIndex: 1,
				Explanation:  "首付降低本金，月供和总利息随之下降。",
			},
			{
				ID:     "car5",
				Prompt: "\"预审批\"贷款的好处是？",
				Options: []string{
					"必须在 4S 店贷款",
					"谈价前就知道自己的利率和预算",
					"免除首付",
					"降低车辆保险",
				},
				CorrectIndex: 1,
				Explanation:  "预审批让你带着明确的预算和利率去谈判。",
			},
		},
	},
	{
		ID:          "home-buying",
		Name:        "购房体验",
		Description: "沉浸式体验：首付、月供与隐藏成本",
		PassPercent: 80,
		Questions: []Question{
			{
				ID:     "h1",
				Prompt: "房贷月供之外，购房者每年还需要负担？",
				Options: []string{
					"房产税和维护费用", "只有水电费", "没有其他开支", "车位费而已",
				},
				CorrectIndex: 0,
				Explanation:  "税费、保险和维护是长期持有房产的固定成本。",
			},
			{
				ID:     "h2",
				Prompt: "首付比例更低通常意味着？",
				Options: []string{
					"月供更低", "可能需要额外的贷款保险", "利息更少", "不能入住",
				},
				CorrectIndex: 1,
				Explanation:  "低首付提高了贷款风险，常伴随额外的保险费用。",
			},
			{
				ID:     "h3",
				Prompt: "评估\"买得起多少钱的房\"最稳妥的出发点是？",
				Options: []string{
					"中介推荐的最高额度",
					"自身月收支和应急储备",
					"朋友买了多少钱的房",
					"银行批多少就买多少",
				},
				CorrectIndex: 1,
				Explanation:  "预算应由自身现金流决定，而不是可贷额度上限。",
			},
			{
				ID:     "h4",
				Prompt: "固定利率房贷的特点是？",
				Options: []string{
					"月供随市场波动",
					"整个期限内利率不变",
					"前五年免息",
					"必须十年还清",
				},
				CorrectIndex: 1,
				Explanation:  "固定利率锁定月供，便于长期预算。",
			},
			{
				ID:     "h5",
				Prompt: "应急储备金在购房决策中的作用是？",
				Options: []string{
					"可以全部用作首付",
					"应保留以应对失业或大修等意外",
					"没有作用",
					"必须交给银行",
				},
				CorrectIndex: 1,
				Explanation:  "掏空应急金付首付会让家庭抗风险能力归零。",
			},
		},
	},
	{
		ID:          "college-planning",
		Name:        "大学规划",
		Description: "沉浸式体验：学费、助学金与教育投资回报",
		PassPercent: 80,
		Questions: []Question{
			{
				ID:     "col1",
				Prompt: "申请助学金和奖学金的最佳时机是？",
				Options: []string{
					"入学之后", "越早越好，注意申请截止日期", "毕业前", "不需要申请",
				},
				CorrectIndex: 1,
				Explanation:  "多数资助按截止日期和先到先得原则发放。",
			},
			{
				ID:     "col2",
				Prompt: "助学贷款与奖学金最大的区别是？",
				Options: []string{
					"都不用还", "贷款需要连本带息偿还", "奖学金要还利息", "没有区别",
				},
				CorrectIndex: 1,
				Explanation:  "奖学金是赠予，贷款是要偿还的负债。",
			},
			{
				ID:     "col3",
				Prompt: "评估一所学校的\"性价比\"应该比较？",
				Options: []string{
					"校园风景",
					"总花费与毕业后收入前景",
					"宿舍条件",
					"校队成绩",
				},
				CorrectIndex: 1,
				Explanation:  "教育是投资，应权衡总成本与回报。",
			},
			{
				ID:     "col4",
				Prompt: "在校期间兼职收入最合理的用途是？",
				Options: []string{
					"全部娱乐消费",
					"覆盖部分生活费以减少借贷",
					"买彩票",
					"借给同学",
				},
				CorrectIndex: 1,
				Explanation:  "减少在校借贷可显著降低毕业后的偿债压力。",
			},
		},
	},
	{
		ID:          "stock-market",
		Name:        "股市模拟",
		Description: "沉浸式体验：在模拟行情中交易并管理组合",
		PassPercent: 80,
		Questions: []Question{
			{
				ID:     "s1",
				Prompt: "分散投资的主要目的是？",
				Options: []string{
					"保证收益最大化",
					"降低单一标的波动带来的风险",
					"避免交税",
					"提高交易频率",
				},
				CorrectIndex: 1,
				Explanation:  "把资金分散到不同标的和行业能平滑组合波动。",
			},
			{
				ID:     "s2",
				Prompt: "\"未实现收益\"指的是？",
				Options: []string{
					"已经卖出落袋的利润",
					"持仓市值相对成本的浮动盈亏",
					"分红收入",
					"手续费",
				},
				CorrectIndex: 1,
				Explanation:  "浮盈浮亏只有在卖出时才会变成已实现损益。",
			},
			{
				ID:     "s3",
				Prompt: "股价短期剧烈波动时，长期投资者通常应该？",
				Options: []string{
					"恐慌性清仓",
					"坚持既定计划，避免情绪化交易",
					"满仓抄底",
					"频繁高抛低吸",
				},
				CorrectIndex: 1,
				Explanation:  "短期波动是常态，情绪化交易是长期收益的大敌。",
			},
			{
				ID:     "s4",
				Prompt: "加权平均成本在买入更多同一股票后会？",
				Options: []string{
					"保持第一次买入价",
					"向新买入价的方向移动",
					"变为零",
					"等于最高买入价",
				},
				CorrectIndex: 1,
				Explanation:  "平均成本 = 总投入 / 总股数，随每次买入更新。",
			},
		},
	},
}
