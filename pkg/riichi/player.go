package riichi

import "github.com/google/uuid"

// 初始显示名，按固定桌位顺序
var defaultNames = [4]string{"東家", "南家", "西家", "北家"}

// Player 玩家信息
// 桌位（数组下标）在整个半庄内不变，Wind 每局轮转
type Player struct {
	Id       string `json:"id"`        // 稳定标识，与座位无关
	Name     string `json:"name"`      // 显示名，开局前可改
	Score    int    `json:"score"`     // 持ち点，只由结算变动
	IsRiichi bool   `json:"is_riichi"` // 本局是否已立直，每局清空
	Wind     Seat   `json:"wind"`      // 当前自风
	Chips    int    `json:"chips"`     // 筹码数，自由模式使用
}

// newPlayer 按桌位创建初始玩家
func newPlayer(pos Seat, startScore int) Player {
	return Player{
		Id:    uuid.NewString(),
		Name:  defaultNames[pos],
		Score: startScore,
		Wind:  pos,
	}
}

// IsDealer 是否为庄家（自风东）
func (p *Player) IsDealer() bool {
	return p.Wind == SeatEast
}
