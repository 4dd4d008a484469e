package riichi

// flow 一局结算的临时选择状态
// 每次完整结算或取消后整体清空，不进入撤销快照
type flow struct {
	state    FlowState
	selected Seat   // 空闲状态下预选的座位（立直用）
	hasSel   bool   // 是否有预选座位
	winners  []Seat // 和了者，按宣言顺序
	loser    Seat   // 放铳者
	hasLoser bool
	tenpai   []Seat // 流局时的听牌者
	ronIndex int    // 多家荣和的结算进度
	chips    int    // 当前结算待收的筹码数
}

// reset 清空全部选择
func (f *flow) reset() {
	*f = flow{}
}

// toggleWinner 切换和了者的选中状态，保持宣言顺序
func (f *flow) toggleWinner(seat Seat) {
	for i, w := range f.winners {
		if w == seat {
			f.winners = append(f.winners[:i], f.winners[i+1:]...)
			return
		}
	}
	f.winners = append(f.winners, seat)
}

// toggleTenpai 切换听牌者的选中状态
func (f *flow) toggleTenpai(seat Seat) {
	for i, p := range f.tenpai {
		if p == seat {
			f.tenpai = append(f.tenpai[:i], f.tenpai[i+1:]...)
			return
		}
	}
	f.tenpai = append(f.tenpai, seat)
}

// isWinner 座位是否在和了者中
func (f *flow) isWinner(seat Seat) bool {
	for _, w := range f.winners {
		if w == seat {
			return true
		}
	}
	return false
}

// isTenpai 座位是否在听牌者中
func (f *flow) isTenpai(seat Seat) bool {
	for _, p := range f.tenpai {
		if p == seat {
			return true
		}
	}
	return false
}
