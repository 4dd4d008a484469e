package riichi

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/play/majan/pkg/rules"
)

// Game 一场半庄的记分状态机
// 单线程使用：每个操作在返回前完成全部状态变更，失败的操作不产生任何变更
// （取消除外，取消只丢弃选择，已结算的转移由撤销恢复）
type Game struct {
	Players      [4]Player // 按固定桌位排列
	RiichiSticks int       // 供托的立直棒数
	RoundWind    Seat      // 场风，只会是东或南
	RoundNumber  int       // 局数 1..4
	Honba        int       // 本场数
	Mode         GameMode
	Started      bool // 首个操作后置位，此后不可改名/换模式
	Finished     bool

	sel      flow
	log      []RoundLogEntry
	undo     []Snapshot
	rules    *rules.Settings
	recorder Recorder
	results  []Result
}

// Option Game 的配置选项
type Option func(*Game)

// WithMode 设置计分模式
func WithMode(m GameMode) Option {
	return func(g *Game) {
		g.Mode = m
	}
}

// WithRules 设置规则参数，nil 时使用默认规则
func WithRules(s *rules.Settings) Option {
	return func(g *Game) {
		if s != nil {
			g.rules = s
		}
	}
}

// WithRecorder 设置终局存档的写入方，未设置时终局不写存档
func WithRecorder(r Recorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

// NewGame 创建一场新的半庄，东1局0本场，四名玩家按东南西北入座
func NewGame(opts ...Option) *Game {
	g := &Game{
		Mode:        ModeSet,
		RoundWind:   SeatEast,
		RoundNumber: 1,
		rules:       rules.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	for i := range g.Players {
		g.Players[i] = newPlayer(Seat(i), g.rules.StartScore)
	}
	log.Trace().Int("start_score", g.rules.StartScore).Uint8("mode", uint8(g.Mode)).Msg("new game created")
	return g
}

// Reset 结束当前半庄并重新开始
// 玩家重新生成（新Id、默认名），规则、模式和存档写入方保持不变
func (g *Game) Reset() {
	for i := range g.Players {
		g.Players[i] = newPlayer(Seat(i), g.rules.StartScore)
	}
	g.RiichiSticks = 0
	g.RoundWind = SeatEast
	g.RoundNumber = 1
	g.Honba = 0
	g.Started = false
	g.Finished = false
	g.log = nil
	g.undo = nil
	g.results = nil
	g.sel.reset()
	log.Trace().Msg("game reset")
}

// SetMode 切换计分模式，只允许在开局前
func (g *Game) SetMode(m GameMode) error {
	if g.Started {
		return ErrGameStarted
	}
	g.Mode = m
	return nil
}

// Rename 修改座位上玩家的显示名，只允许在开局前
func (g *Game) Rename(seat Seat, name string) error {
	if seat > SeatNorth {
		return ErrBadSeat
	}
	if g.Started {
		return ErrGameStarted
	}
	g.Players[seat].Name = name
	return nil
}

// State 当前选择流程状态
func (g *Game) State() FlowState {
	return g.sel.state
}

// SelectedSeat 空闲状态下预选的座位
func (g *Game) SelectedSeat() (Seat, bool) {
	return g.sel.selected, g.sel.hasSel
}

// Winners 当前已宣言的和了者，按宣言顺序
func (g *Game) Winners() []Seat {
	return append([]Seat(nil), g.sel.winners...)
}

// TenpaiSeats 当前已选择的听牌者
func (g *Game) TenpaiSeats() []Seat {
	return append([]Seat(nil), g.sel.tenpai...)
}

// Log 当前半庄的局记录
func (g *Game) Log() []RoundLogEntry {
	return cloneLog(g.log)
}

// Dealer 当前庄家的桌位
func (g *Game) Dealer() Seat {
	for i := range g.Players {
		if g.Players[i].IsDealer() {
			return Seat(i)
		}
	}
	// 换风是置换，不会走到这里
	return SeatEast
}

// RoundLabel 当前局的展示文本，如 "東1局 0本場"
func (g *Game) RoundLabel() string {
	return fmt.Sprintf("%s%d局 %d本場", g.RoundWind, g.RoundNumber, g.Honba)
}

// Instruction 当前流程状态对应的操作提示
func (g *Game) Instruction() string {
	if g.Finished {
		return "半荘が終了しました。"
	}
	switch g.sel.state {
	case FlowRonWinners:
		return "和了者を全て選択後、再度ロンボタンを押してください"
	case FlowRonLoser:
		return "放銃したプレイヤーを選択してください"
	case FlowRonScore, FlowTsumoScore:
		return "点数を選択してください"
	case FlowTsumoWinner:
		return "ツモ和了したプレイヤーを選択してください"
	case FlowTenpai:
		return "聴牌したプレイヤーを全て選択し、再度流局ボタンを押してください"
	default:
		return ""
	}
}

// cancel 丢弃当前选择回到空闲，返回给调用方展示的取消错误
func (g *Game) cancel() error {
	log.Trace().Int8("state", int8(g.sel.state)).Msg("selection canceled")
	g.sel.reset()
	return ErrCanceled
}

// Cancel 操作者主动取消当前选择流程
func (g *Game) Cancel() {
	g.sel.reset()
}

// SelectSeat 座位点击
// 含义随流程状态变化：空闲时预选、选和了者/听牌者时多选切换、选放铳者时单选
func (g *Game) SelectSeat(seat Seat) error {
	if seat > SeatNorth {
		return ErrBadSeat
	}
	if g.Finished {
		return ErrGameFinished
	}

	switch g.sel.state {
	case FlowIdle:
		if g.sel.hasSel && g.sel.selected == seat {
			g.sel.hasSel = false
		} else {
			g.sel.selected = seat
			g.sel.hasSel = true
		}
	case FlowRonWinners:
		g.sel.toggleWinner(seat)
	case FlowRonLoser:
		// 和了者不能同时是放铳者
		if g.sel.isWinner(seat) {
			return ErrLoserIsWinner
		}
		g.sel.loser = seat
		g.sel.hasLoser = true
		g.sel.ronIndex = 0
		g.sel.state = FlowRonScore
	case FlowTsumoWinner:
		g.sel.winners = []Seat{seat}
		g.sel.state = FlowTsumoScore
	case FlowTenpai:
		g.sel.toggleTenpai(seat)
	default:
		// 点数选择期间不接受座位点击
		return g.cancel()
	}
	return nil
}

// DeclareRon 荣和宣言
// 空闲时进入和了者选择；再次按下确认并进入放铳者选择；其余状态视为取消
func (g *Game) DeclareRon() error {
	if g.Finished {
		return ErrGameFinished
	}
	switch g.sel.state {
	case FlowIdle:
		g.pushUndo()
		g.Started = true
		g.sel.reset()
		g.sel.state = FlowRonWinners
		return nil
	case FlowRonWinners:
		if len(g.sel.winners) == 0 {
			return ErrNoWinners
		}
		g.sel.state = FlowRonLoser
		return nil
	default:
		return g.cancel()
	}
}

// DeclareTsumo 自摸宣言，进入和了者选择
func (g *Game) DeclareTsumo() error {
	if g.Finished {
		return ErrGameFinished
	}
	if g.sel.state != FlowIdle {
		return g.cancel()
	}
	g.pushUndo()
	g.Started = true
	g.sel.reset()
	g.sel.state = FlowTsumoWinner
	return nil
}

// DeclareRyuukyoku 流局宣言
// 空闲时进入听牌者选择；再次按下确认并结算；其余状态视为取消
func (g *Game) DeclareRyuukyoku() error {
	if g.Finished {
		return ErrGameFinished
	}
	switch g.sel.state {
	case FlowIdle:
		g.pushUndo()
		g.Started = true
		g.sel.reset()
		g.sel.state = FlowTenpai
		return nil
	case FlowTenpai:
		g.settleRyuukyoku()
		return nil
	default:
		return g.cancel()
	}
}

// DeclareAbortiveDraw 特殊流局（九种九牌等）
// 本场+1、立直状态清空，庄家不流、座位不转，供托保留
func (g *Game) DeclareAbortiveDraw() error {
	if g.Finished {
		return ErrGameFinished
	}
	if g.sel.state != FlowIdle {
		return ErrNotIdle
	}
	g.pushUndo()
	g.Started = true
	g.Honba++
	for i := range g.Players {
		g.Players[i].IsRiichi = false
	}
	g.log = append(g.log, RoundLogEntry{Kind: LogAbortive})
	g.sel.reset()
	log.Debug().Int("honba", g.Honba).Msg("abortive draw")
	return nil
}

// DeclareRiichi 为预选座位宣言立直
// 扣立直棒、供托+1；自由模式下点数不足时拒绝
func (g *Game) DeclareRiichi() error {
	if g.Finished {
		return ErrGameFinished
	}
	if g.sel.state != FlowIdle {
		return ErrNotIdle
	}
	if !g.sel.hasSel {
		return ErrNoSeatSelected
	}
	p := &g.Players[g.sel.selected]
	if p.IsRiichi {
		return ErrAlreadyRiichi
	}
	if g.Mode == ModeFree && p.Score < g.rules.MinRiichi {
		return ErrScoreTooLow
	}

	g.pushUndo()
	g.Started = true
	p.Score -= g.rules.RiichiCost
	p.IsRiichi = true
	g.RiichiSticks++
	log.Debug().Str("player", p.Name).Int("sticks", g.RiichiSticks).Msg("riichi declared")
	g.checkEndConditions()
	g.sel.reset()
	return nil
}

// SetChips 设置当前结算待收的筹码数，只在点数选择期间、自由模式下有效
func (g *Game) SetChips(n int) error {
	if g.sel.state != FlowRonScore && g.sel.state != FlowTsumoScore {
		return ErrNotAwaitingScore
	}
	if g.Mode != ModeFree {
		return ErrChipsNotAllowed
	}
	if n < 0 || n > g.rules.MaxChips {
		return ErrChipsOutOfRange
	}
	g.sel.chips = n
	return nil
}

// ChooseScore 为当前待结算的和了者选择点数档位
// 荣和时逐个和了者调用，自摸时调用一次
func (g *Game) ChooseScore(index int) error {
	if g.Finished {
		return ErrGameFinished
	}
	switch g.sel.state {
	case FlowRonScore:
		return g.settleRon(index)
	case FlowTsumoScore:
		return g.settleTsumo(index)
	default:
		return ErrNotAwaitingScore
	}
}

// endOfRound 一局结束的收尾：清立直、查终局条件、处理连庄/轮转
// 特殊流局不走这里
func (g *Game) endOfRound(isAgari bool) {
	for i := range g.Players {
		g.Players[i].IsRiichi = false
	}
	if !g.checkEndConditions() {
		g.nextRound(isAgari)
	}
	g.sel.reset()
}

// checkEndConditions 自由模式的强制终局检查：击飞或封顶
// 返回是否已终局
func (g *Game) checkEndConditions() bool {
	if g.Mode != ModeFree {
		return false
	}
	for i := range g.Players {
		if g.Players[i].Score < g.rules.BustScore {
			log.Info().Str("player", g.Players[i].Name).Int("score", g.Players[i].Score).Msg("game over: player busted")
			g.finish()
			return true
		}
	}
	for i := range g.Players {
		if g.Players[i].Score >= g.rules.CapScore {
			log.Info().Str("player", g.Players[i].Name).Int("score", g.Players[i].Score).Msg("game over: score cap reached")
			g.finish()
			return true
		}
	}
	return false
}

// nextRound 连庄判定与局的推进
func (g *Game) nextRound(isAgari bool) {
	dealer := g.Dealer()

	// 连庄：庄家和了，或流局时庄家听牌
	renchan := false
	if isAgari {
		renchan = g.sel.isWinner(dealer)
	} else {
		renchan = g.sel.isTenpai(dealer)
	}
	if renchan {
		g.Honba++
		log.Debug().Int("honba", g.Honba).Msg("dealer continues")
		return
	}

	// 南4为终局判定点：庄家不是首位、或首位但未到返し点则终局
	if g.RoundWind == SeatSouth && g.RoundNumber == 4 {
		top := g.topScorer()
		if top != dealer || g.Players[top].Score < g.rules.ReturnScore {
			g.finish()
			return
		}
	}

	g.Honba = 0
	if g.RoundWind == SeatEast && g.RoundNumber == 4 {
		g.RoundWind = SeatSouth
		g.RoundNumber = 1
	} else {
		g.RoundNumber++
	}
	for i := range g.Players {
		g.Players[i].Wind = g.Players[i].Wind.Prev()
	}
	log.Debug().Str("round", g.RoundLabel()).Msg("round advanced")
}

// topScorer 当前首位的桌位，同分取桌位靠前者
func (g *Game) topScorer() Seat {
	top := Seat(0)
	for i := 1; i < len(g.Players); i++ {
		if g.Players[i].Score > g.Players[top].Score {
			top = Seat(i)
		}
	}
	return top
}
