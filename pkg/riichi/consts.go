package riichi

import "errors"

// Seat 座位标识，兼作玩家的固定桌位索引和当前自风的值
// 固定顺序为 东南西北，座位换风时按此顺序逆移一位
type Seat uint8

const (
	SeatEast Seat = iota // 东
	SeatSouth
	SeatWest
	SeatNorth
)

var seatNames = [4]string{"東", "南", "西", "北"}

// String 返回风位的单字表示
func (s Seat) String() string {
	if s > SeatNorth {
		return "?"
	}
	return seatNames[s]
}

// Next 顺时针的下一个风位
func (s Seat) Next() Seat {
	return (s + 1) % 4
}

// Prev 换风：每局结束后每个玩家退到前一个风位（东→北）
func (s Seat) Prev() Seat {
	return (s + 3) % 4
}

// GameMode 计分模式
type GameMode uint8

const (
	ModeSet  GameMode = iota // セット：固定顺位结算（马+顶家奖励）
	ModeFree                 // フリー：开放式结算（查表支付，带击飞/封顶终局）
)

// FlowState 一局结算的选择流程状态
type FlowState int8

const (
	FlowIdle        FlowState = iota // 空闲，可发起任意操作
	FlowRonWinners                   // 选择荣和的和了者（可多选）
	FlowRonLoser                     // 选择放铳者
	FlowRonScore                     // 依次为各和了者选点数
	FlowTsumoWinner                  // 选择自摸的和了者
	FlowTsumoScore                   // 为自摸者选点数
	FlowTenpai                       // 流局时选择听牌者（可多选）
)

// 错误定义
// 这些都是可恢复的操作错误，返回错误时状态机不发生任何变化
var (
	ErrGameFinished     = errors.New("game already finished")
	ErrGameStarted      = errors.New("game already started")
	ErrNotIdle          = errors.New("another selection is in progress")
	ErrCanceled         = errors.New("selection canceled")
	ErrNoWinners        = errors.New("no winners selected")
	ErrLoserIsWinner    = errors.New("loser cannot be one of the winners")
	ErrNoSeatSelected   = errors.New("no seat selected")
	ErrAlreadyRiichi    = errors.New("seat already declared riichi")
	ErrScoreTooLow      = errors.New("score too low to declare riichi")
	ErrNotAwaitingScore = errors.New("no score selection in progress")
	ErrBadScoreIndex    = errors.New("score index out of range")
	ErrChipsNotAllowed  = errors.New("chips are only used in free mode")
	ErrChipsOutOfRange  = errors.New("chip count out of range")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrBadSeat          = errors.New("invalid seat")
)
