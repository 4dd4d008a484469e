package riichi

// RoundLogKind 一局结果的类型
type RoundLogKind string

const (
	LogRon       RoundLogKind = "ron"               // 荣和
	LogTsumo     RoundLogKind = "tsumo"             // 自摸
	LogRyuukyoku RoundLogKind = "ryuukyoku"         // 流局
	LogAbortive  RoundLogKind = "special_ryuukyoku" // 特殊流局（九种九牌等）
)

// RoundLogEntry 一局结果的记录，追加后不再修改
type RoundLogEntry struct {
	Kind    RoundLogKind `json:"type"`
	Winners []string     `json:"winners,omitempty"` // 荣和：和了者（按宣言顺序）
	Loser   string       `json:"loser,omitempty"`   // 荣和：放铳者
	Winner  string       `json:"winner,omitempty"`  // 自摸：和了者
	Losers  []string     `json:"losers,omitempty"`  // 自摸：支付的三家
	Tenpai  []string     `json:"tenpai,omitempty"`  // 流局：听牌者
}

// clone 深拷贝一条记录，切片不与原值共享
func (e RoundLogEntry) clone() RoundLogEntry {
	c := e
	if e.Winners != nil {
		c.Winners = append([]string(nil), e.Winners...)
	}
	if e.Losers != nil {
		c.Losers = append([]string(nil), e.Losers...)
	}
	if e.Tenpai != nil {
		c.Tenpai = append([]string(nil), e.Tenpai...)
	}
	return c
}

// cloneLog 深拷贝整个日志
func cloneLog(entries []RoundLogEntry) []RoundLogEntry {
	if entries == nil {
		return nil
	}
	out := make([]RoundLogEntry, len(entries))
	for i, e := range entries {
		out[i] = e.clone()
	}
	return out
}
