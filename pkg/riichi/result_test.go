package riichi

import "testing"

func TestFinishSetModeScoring(t *testing.T) {
	// [35000,30000,20000,15000] 无供托
	// 精算 (5,0,-10,-15) + 马(30,10,-10,-30) + 顶家20 → (55,10,-20,-45)，合计0
	g := NewGame()
	scores := [4]int{35000, 30000, 20000, 15000}
	for i, s := range scores {
		g.Players[i].Score = s
	}

	if err := g.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	results := g.Results()
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	wantFinal := [4]int{55, 10, -20, -45}
	sum := 0
	for i, r := range results {
		if r.Rank != i+1 {
			t.Errorf("result %d expected rank %d, got %d", i, i+1, r.Rank)
		}
		if r.FinalScore != wantFinal[i] {
			t.Errorf("rank %d expected final %d, got %d", r.Rank, wantFinal[i], r.FinalScore)
		}
		if r.Score != scores[i] {
			t.Errorf("rank %d should keep raw score %d, got %d", r.Rank, scores[i], r.Score)
		}
		sum += r.FinalScore
	}
	if sum != 0 {
		t.Errorf("final scores should sum to zero, got %d", sum)
	}
}

func TestFinishSticksAffectRankingOnly(t *testing.T) {
	// 供托临时加给首位决定名次，但精算仍用原始持ち点
	g := NewGame()
	scores := [4]int{30000, 30000, 20000, 20000}
	for i, s := range scores {
		g.Players[i].Score = s
	}
	g.RiichiSticks = 1

	if err := g.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	results := g.Results()

	// 同分时供托给先找到的东家，名次按调整分排，原顺序保持
	if results[0].Wind != SeatEast || results[1].Wind != SeatSouth {
		t.Errorf("expected east then south at the top, got %v / %v", results[0].Wind, results[1].Wind)
	}
	wantFinal := [4]int{50, 10, -20, -40}
	for i, r := range results {
		if r.FinalScore != wantFinal[i] {
			t.Errorf("rank %d expected final %d, got %d", r.Rank, wantFinal[i], r.FinalScore)
		}
	}
	if g.RiichiSticks != 0 {
		t.Errorf("sticks should be cleared after finish, got %d", g.RiichiSticks)
	}
}

func TestFinishFreeModePayout(t *testing.T) {
	g := NewGame(WithMode(ModeFree))
	scores := [4]int{40000, 30000, 20000, 10000}
	for i, s := range scores {
		g.Players[i].Score = s
	}

	if err := g.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	results := g.Results()

	// 1位无支付额，其余按各自持ち点查表
	wantFinal := [4]int{0, 1000, 1500, 3000}
	for i, r := range results {
		if r.FinalScore != wantFinal[i] {
			t.Errorf("rank %d expected payout %d, got %d", r.Rank, wantFinal[i], r.FinalScore)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{35000, 35},
		{34500, 35},
		{34499, 34},
		{30000, 30},
		{-1500, -1}, // 负数也按0.5进位
		{-1501, -2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.score); got != tt.expected {
			t.Errorf("roundHalfUp(%d) = %d, want %d", tt.score, got, tt.expected)
		}
	}
}
