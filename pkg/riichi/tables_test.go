package riichi

import "testing"

func TestScoreTableShapes(t *testing.T) {
	if len(RonTableDealer) != 17 || len(RonTableChild) != 17 {
		t.Errorf("ron tables expected 17 tiers, got %d / %d", len(RonTableDealer), len(RonTableChild))
	}
	if len(TsumoTableDealer) != 14 || len(TsumoTableChild) != 14 {
		t.Errorf("tsumo tables expected 14 tiers, got %d / %d", len(TsumoTableDealer), len(TsumoTableChild))
	}

	// 表内点数单调递增
	for i := 1; i < len(RonTableDealer); i++ {
		if RonTableDealer[i].Score <= RonTableDealer[i-1].Score {
			t.Errorf("dealer ron table not increasing at %d", i)
		}
	}
	for i := 1; i < len(RonTableChild); i++ {
		if RonTableChild[i].Score <= RonTableChild[i-1].Score {
			t.Errorf("child ron table not increasing at %d", i)
		}
	}

	// 闲家自摸表每档都要有庄家/子家两个支付额
	for i, e := range TsumoTableChild {
		if e.ParentPayment == 0 || e.ChildPayment == 0 {
			t.Errorf("child tsumo tier %d should have both payments", i)
		}
	}

	if RonTable(true)[0].Score != 1500 || RonTable(false)[0].Score != 1000 {
		t.Error("RonTable dealer flag returns wrong table")
	}
	if TsumoTable(true)[0].Payment != 500 || TsumoTable(false)[0].ChildPayment != 300 {
		t.Error("TsumoTable dealer flag returns wrong table")
	}
}

func TestFreeModePayoutLookup(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		rank     int
		expected int
	}{
		{"原点2位", 30000, 2, 1000},
		{"原点4位", 30000, 4, 2000},
		{"高分2位", 49000, 2, 1950},
		{"超出上限收敛", 52500, 2, 1950},
		{"千位向下取整", 31999, 2, 1050},
		{"零分4位", 0, 4, 3500},
		{"负分收敛到零档", -2000, 4, 3500},
		{"1位无支付", 40000, 1, 0},
		{"非法名次", 30000, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FreeModePayout(tt.score, tt.rank); got != tt.expected {
				t.Errorf("FreeModePayout(%d, %d) = %d, want %d", tt.score, tt.rank, got, tt.expected)
			}
		})
	}
}
