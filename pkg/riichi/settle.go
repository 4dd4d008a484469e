package riichi

import "github.com/rs/zerolog/log"

// settleRon 结算当前待结算的和了者，全部结算完后分配供托并收尾
// 多家荣和按宣言顺序逐家结算，index 为点数表档位
func (g *Game) settleRon(index int) error {
	winnerSeat := g.sel.winners[g.sel.ronIndex]
	winner := &g.Players[winnerSeat]
	table := RonTable(winner.IsDealer())
	if index < 0 || index >= len(table) {
		return ErrBadScoreIndex
	}

	// 首家结算时写入局记录
	if g.sel.ronIndex == 0 {
		names := make([]string, len(g.sel.winners))
		for i, w := range g.sel.winners {
			names[i] = g.Players[w].Name
		}
		g.log = append(g.log, RoundLogEntry{
			Kind:    LogRon,
			Winners: names,
			Loser:   g.Players[g.sel.loser].Name,
		})
	}

	amount := table[index].Score + g.Honba*g.rules.HonbaRon
	loser := &g.Players[g.sel.loser]
	winner.Score += amount
	winner.Chips += g.sel.chips
	loser.Score -= amount
	loser.Chips -= g.sel.chips
	log.Debug().Str("winner", winner.Name).Str("loser", loser.Name).Int("amount", amount).Msg("ron settled")

	g.sel.ronIndex++
	if g.sel.ronIndex < len(g.sel.winners) {
		// 还有下一家，继续等待点数选择
		return nil
	}

	g.awardSticks()
	g.endOfRound(true)
	return nil
}

// awardSticks 头跳：供托全部给离放铳者最近的和了者
// 从放铳者的自风起顺时针扫描，第一个命中的和了者得供托；扫不到时兜底给首位宣言者
func (g *Game) awardSticks() {
	if g.RiichiSticks == 0 {
		return
	}
	target, ok := g.nearestWinner()
	if !ok {
		target = g.sel.winners[0]
	}
	gain := g.RiichiSticks * g.rules.RiichiCost
	g.Players[target].Score += gain
	g.RiichiSticks = 0
	log.Debug().Str("player", g.Players[target].Name).Int("gain", gain).Msg("riichi sticks awarded")
}

// nearestWinner 从放铳者的自风起顺时针扫描，返回第一个命中的和了者
func (g *Game) nearestWinner() (Seat, bool) {
	loserWind := g.Players[g.sel.loser].Wind
	for i := 1; i < 4; i++ {
		wind := Seat((int(loserWind) + i) % 4)
		for seat := range g.Players {
			if g.Players[seat].Wind == wind && g.sel.isWinner(Seat(seat)) {
				return Seat(seat), true
			}
		}
	}
	return 0, false
}

// settleTsumo 结算自摸
// 庄家和了三家均付；闲家和了庄家付双倍档；和了者另得全部供托
func (g *Game) settleTsumo(index int) error {
	winnerSeat := g.sel.winners[0]
	winner := &g.Players[winnerSeat]
	isDealer := winner.IsDealer()
	table := TsumoTable(isDealer)
	if index < 0 || index >= len(table) {
		return ErrBadScoreIndex
	}
	entry := table[index]

	losers := make([]string, 0, 3)
	honbaBonus := g.Honba * g.rules.HonbaTsumo
	totalGain := 0
	totalChips := 0
	for i := range g.Players {
		if Seat(i) == winnerSeat {
			continue
		}
		p := &g.Players[i]
		var payment int
		if isDealer {
			payment = entry.Payment + honbaBonus
		} else if p.IsDealer() {
			payment = entry.ParentPayment + honbaBonus
		} else {
			payment = entry.ChildPayment + honbaBonus
		}
		p.Score -= payment
		p.Chips -= g.sel.chips
		totalGain += payment
		totalChips += g.sel.chips
		losers = append(losers, p.Name)
	}
	winner.Score += totalGain + g.RiichiSticks*g.rules.RiichiCost
	winner.Chips += totalChips
	g.RiichiSticks = 0

	g.log = append(g.log, RoundLogEntry{
		Kind:   LogTsumo,
		Winner: winner.Name,
		Losers: losers,
	})
	log.Debug().Str("winner", winner.Name).Int("gain", totalGain).Msg("tsumo settled")

	g.endOfRound(true)
	return nil
}

// settleRyuukyoku 结算流局
// 1~3家听牌时未听者分摊罚符、听牌者均分；0或4家听牌不移动点数
func (g *Game) settleRyuukyoku() {
	names := make([]string, len(g.sel.tenpai))
	for i, s := range g.sel.tenpai {
		names[i] = g.Players[s].Name
	}
	g.log = append(g.log, RoundLogEntry{Kind: LogRyuukyoku, Tenpai: names})

	n := len(g.sel.tenpai)
	if n > 0 && n < 4 {
		// 罚符总额对 1..3 都能整除，点数恒为整数
		pay := g.rules.TenpaiPool / (4 - n)
		receive := g.rules.TenpaiPool / n
		for i := range g.Players {
			if g.sel.isTenpai(Seat(i)) {
				g.Players[i].Score += receive
			} else {
				g.Players[i].Score -= pay
			}
		}
	}
	log.Debug().Int("tenpai", n).Msg("ryuukyoku settled")

	g.endOfRound(false)
}
