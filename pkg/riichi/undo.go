package riichi

// Snapshot 撤销快照
// 在每次结算流程开始时整体深拷贝，不与现场状态共享任何可变引用
type Snapshot struct {
	Players      [4]Player
	RiichiSticks int
	RoundWind    Seat
	RoundNumber  int
	Honba        int
	Log          []RoundLogEntry
	Started      bool
}

// pushUndo 压入当前状态的快照
// Players 是值数组，字段均为标量，赋值即深拷贝；日志需要逐条复制
func (g *Game) pushUndo() {
	g.undo = append(g.undo, Snapshot{
		Players:      g.Players,
		RiichiSticks: g.RiichiSticks,
		RoundWind:    g.RoundWind,
		RoundNumber:  g.RoundNumber,
		Honba:        g.Honba,
		Log:          cloneLog(g.log),
		Started:      g.Started,
	})
}

// Undo 回退到最近一次快照，每个快照只能回退一次
// 回退会清空当前选择流程，并解除终局标记
func (g *Game) Undo() error {
	if len(g.undo) == 0 {
		return ErrNothingToUndo
	}
	s := g.undo[len(g.undo)-1]
	g.undo = g.undo[:len(g.undo)-1]

	g.Players = s.Players
	g.RiichiSticks = s.RiichiSticks
	g.RoundWind = s.RoundWind
	g.RoundNumber = s.RoundNumber
	g.Honba = s.Honba
	g.log = cloneLog(s.Log)
	g.Started = s.Started
	g.Finished = false
	g.results = nil
	g.sel.reset()
	return nil
}

// UndoDepth 返回当前可回退的步数
func (g *Game) UndoDepth() int {
	return len(g.undo)
}
