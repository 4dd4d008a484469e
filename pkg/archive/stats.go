package archive

import (
	"sort"

	"github.com/play/majan/pkg/riichi"
)

// PlayerSummary 同名玩家跨场次的累计成绩
type PlayerSummary struct {
	Name       string  `json:"name"`
	Games      int     `json:"games"`
	Wins       int     `json:"wins"` // 1位次数
	AvgRank    float64 `json:"avg_rank"`
	TotalFinal int     `json:"total_final"`
	TotalChips int     `json:"total_chips"`
}

// Summarize 按玩家名聚合存档，返回按累计精算点降序的总成绩
func Summarize(entries []riichi.ArchiveEntry) []PlayerSummary {
	byName := make(map[string]*PlayerSummary)
	rankSums := make(map[string]int)
	var names []string

	for _, entry := range entries {
		for _, p := range entry.Players {
			s, ok := byName[p.Name]
			if !ok {
				s = &PlayerSummary{Name: p.Name}
				byName[p.Name] = s
				names = append(names, p.Name)
			}
			s.Games++
			if p.Rank == 1 {
				s.Wins++
			}
			rankSums[p.Name] += p.Rank
			s.TotalFinal += p.FinalScore
			s.TotalChips += p.Chips
		}
	}

	out := make([]PlayerSummary, 0, len(names))
	for _, name := range names {
		s := byName[name]
		s.AvgRank = float64(rankSums[name]) / float64(s.Games)
		out = append(out, *s)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].TotalFinal > out[b].TotalFinal
	})
	return out
}
