package riichi

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Result 终局时单个玩家的成绩
type Result struct {
	Player
	Rank       int `json:"rank"`
	FinalScore int `json:"final_score"` // セット：精算点；フリー：查表支付额
}

// ArchivePlayer 存档中的单个玩家成绩
type ArchivePlayer struct {
	Name       string `json:"name"`
	Rank       int    `json:"rank"`
	Score      int    `json:"score"`
	FinalScore int    `json:"final_score"`
	Chips      int    `json:"chips"`
}

// ArchiveEntry 一场半庄的最终结果，写入跨场次存档后不再修改
type ArchiveEntry struct {
	Id      string          `json:"id"`
	Date    time.Time       `json:"date"`
	Players []ArchivePlayer `json:"players"` // 按名次排列
	Log     []RoundLogEntry `json:"log"`
}

// Recorder 终局存档的写入方
type Recorder interface {
	Append(ctx context.Context, entry ArchiveEntry) error
}

// Finish 操作者主动终局，走与强制终局相同的结算
func (g *Game) Finish() error {
	if g.Finished {
		return ErrGameFinished
	}
	if g.sel.state != FlowIdle {
		return ErrNotIdle
	}
	g.finish()
	return nil
}

// Results 终局成绩，按名次排列；未终局时返回 nil
func (g *Game) Results() []Result {
	return append([]Result(nil), g.results...)
}

// finish 终局结算
// 排名时把供托临时加给首位（只影响名次，不影响精算基数），
// セット模式按 切り上げ千点精算+马+顶家奖励，フリー模式按点数查支付表
func (g *Game) finish() {
	if g.Finished {
		return
	}
	g.Finished = true

	// 供托加给首位后的调整分，仅用于排名
	adjusted := [4]int{}
	for i := range g.Players {
		adjusted[i] = g.Players[i].Score
	}
	adjusted[g.topScorer()] += g.RiichiSticks * g.rules.RiichiCost

	order := []int{0, 1, 2, 3}
	sort.SliceStable(order, func(a, b int) bool {
		return adjusted[order[a]] > adjusted[order[b]]
	})

	g.results = make([]Result, 0, 4)
	for rank, idx := range order {
		r := Result{Player: g.Players[idx], Rank: rank + 1}
		if g.Mode == ModeFree {
			r.FinalScore = FreeModePayout(r.Score, r.Rank)
		} else {
			r.FinalScore = roundHalfUp(r.Score) - g.rules.ReturnScore/1000 + g.rules.Uma[rank]
			if r.Rank == 1 {
				r.FinalScore += g.rules.Oka
			}
		}
		g.results = append(g.results, r)
	}
	g.RiichiSticks = 0

	entry := ArchiveEntry{
		Id:      uuid.NewString(),
		Date:    time.Now(),
		Players: make([]ArchivePlayer, 0, 4),
		Log:     cloneLog(g.log),
	}
	for _, r := range g.results {
		entry.Players = append(entry.Players, ArchivePlayer{
			Name:       r.Name,
			Rank:       r.Rank,
			Score:      r.Score,
			FinalScore: r.FinalScore,
			Chips:      r.Chips,
		})
	}
	log.Info().Str("round", g.RoundLabel()).Str("top", entry.Players[0].Name).Msg("game finished")

	// 存档写入尽力而为，失败只记日志
	if g.recorder != nil {
		if err := g.recorder.Append(context.Background(), entry); err != nil {
			log.Warn().Err(err).Msg("failed to append game archive")
		}
	}
}

// roundHalfUp 千点换算，小数部分0.5及以上进位（五捨六入ではなく四捨五入）
func roundHalfUp(score int) int {
	d := float64(score) / 1000
	if d-math.Floor(d) >= 0.5 {
		return int(math.Ceil(d))
	}
	return int(math.Floor(d))
}
