package rules

import (
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// 默认规则（关东フリー常见配置）
const (
	DefaultStartScore  = 25000 // 配给原点
	DefaultReturnScore = 30000 // 返し点，同时是南4庄家续行的点数线
	DefaultOka         = 20    // 顶家奖励（(返し点-配给原点)*4/1000）
	DefaultRiichiCost  = 1000  // 立直棒
	DefaultTenpaiPool  = 3000  // 流局罚符总额
	DefaultHonbaRon    = 300   // 荣和的本场加成（放铳者全额负担）
	DefaultHonbaTsumo  = 100   // 自摸的本场加成（每家）
	DefaultBustScore   = 0     // 自由模式击飞线，低于此点数终局
	DefaultCapScore    = 55000 // 自由模式封顶线，达到此点数终局
	DefaultMinRiichi   = 1000  // 自由模式立直所需最低点数
	DefaultMaxChips    = 10    // 单次结算可选的最大筹码数
)

// Settings 一场半庄使用的规则参数
// 结算公式里的所有固定值都从这里取，引擎不持有魔法数字
type Settings struct {
	StartScore  int    // 配给原点
	ReturnScore int    // 返し点
	Uma         [4]int // 顺位马，按名次1-4
	Oka         int    // 顶家奖励
	RiichiCost  int    // 立直棒点数，同时是供托的换算单位
	TenpaiPool  int    // 流局罚符总额
	HonbaRon    int    // 荣和每本场加成
	HonbaTsumo  int    // 自摸每本场每家加成
	BustScore   int    // 自由模式击飞线
	CapScore    int    // 自由模式封顶线
	MinRiichi   int    // 自由模式立直最低点数
	MaxChips    int    // 单次结算最大筹码数
}

// Default 返回默认规则
func Default() *Settings {
	return &Settings{
		StartScore:  DefaultStartScore,
		ReturnScore: DefaultReturnScore,
		Uma:         [4]int{30, 10, -10, -30},
		Oka:         DefaultOka,
		RiichiCost:  DefaultRiichiCost,
		TenpaiPool:  DefaultTenpaiPool,
		HonbaRon:    DefaultHonbaRon,
		HonbaTsumo:  DefaultHonbaTsumo,
		BustScore:   DefaultBustScore,
		CapScore:    DefaultCapScore,
		MinRiichi:   DefaultMinRiichi,
		MaxChips:    DefaultMaxChips,
	}
}

// FromViper 从 viper 配置读取规则，缺省项使用默认值
// 配置键统一挂在 rules. 前缀下
func FromViper(v *viper.Viper) *Settings {
	def := Default()

	v.SetDefault("rules.start_score", def.StartScore)
	v.SetDefault("rules.return_score", def.ReturnScore)
	v.SetDefault("rules.uma", []int{30, 10, -10, -30})
	v.SetDefault("rules.oka", def.Oka)
	v.SetDefault("rules.riichi_cost", def.RiichiCost)
	v.SetDefault("rules.tenpai_pool", def.TenpaiPool)
	v.SetDefault("rules.honba_ron", def.HonbaRon)
	v.SetDefault("rules.honba_tsumo", def.HonbaTsumo)
	v.SetDefault("rules.bust_score", def.BustScore)
	v.SetDefault("rules.cap_score", def.CapScore)
	v.SetDefault("rules.min_riichi", def.MinRiichi)
	v.SetDefault("rules.max_chips", def.MaxChips)

	s := &Settings{
		StartScore:  v.GetInt("rules.start_score"),
		ReturnScore: v.GetInt("rules.return_score"),
		Oka:         v.GetInt("rules.oka"),
		RiichiCost:  v.GetInt("rules.riichi_cost"),
		TenpaiPool:  v.GetInt("rules.tenpai_pool"),
		HonbaRon:    v.GetInt("rules.honba_ron"),
		HonbaTsumo:  v.GetInt("rules.honba_tsumo"),
		BustScore:   v.GetInt("rules.bust_score"),
		CapScore:    v.GetInt("rules.cap_score"),
		MinRiichi:   v.GetInt("rules.min_riichi"),
		MaxChips:    v.GetInt("rules.max_chips"),
	}

	uma := cast.ToIntSlice(v.Get("rules.uma"))
	if len(uma) == 4 {
		copy(s.Uma[:], uma)
	} else {
		s.Uma = def.Uma
	}
	return s
}
