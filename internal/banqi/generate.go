package banqi

// LegalTargets 扫 32 个格子，返回 p 当前所有合法落点。
// 给 UI 高亮用，也是测试的对照实现。未翻开或已离场的子没有落点。
func (b *Board) LegalTargets(p *Piece) []Pos {
	if p == nil || !p.Alive() || !p.Revealed {
		return nil
	}
	var out []Pos
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			to := Pos{Row: r, Col: c}
			if b.IsValidMove(p, to) {
				out = append(out, to)
			}
		}
	}
	return out
}

// Action 当前行动方的一个可行动作：翻某格，或让某子走到某格。
type Action struct {
	Flip    bool
	PieceID int // 走子时的棋子编号；翻子时无意义
	Pos     Pos // 翻子的格子，或走子的落点
}

// LegalActions 枚举当前行动方的全部可行动作。
// 翻子不分颜色，所有暗子都列；走子只列本方已翻开的子。
func (g *Game) LegalActions() []Action {
	if g.Phase == GameOver {
		return nil
	}
	var out []Action
	myColor := g.SeatColor(g.ActiveSeat)
	for _, pc := range g.Board.Pieces {
		if !pc.Alive() {
			continue
		}
		if !pc.Revealed {
			out = append(out, Action{Flip: true, Pos: pc.Pos})
			continue
		}
		if pc.Side != myColor {
			continue
		}
		for _, to := range g.Board.LegalTargets(pc) {
			out = append(out, Action{PieceID: pc.ID, Pos: to})
		}
	}
	return out
}

// HasAnyLegalMove side 一方是否还有任何可行动作（翻子也算）。
// 只要盘上还有暗子就直接返回 true——翻子永远可行，这个检查最便宜，放最前。
// 否则逐个扫本方已翻开的活子 × 32 个落点，找到一个合法走法即止。
// 返回 false 就是困毙：该方判负。
func (b *Board) HasAnyLegalMove(side Side) bool {
	if b.AnyHidden() {
		return true
	}
	for _, pc := range b.Pieces {
		if !pc.Alive() || !pc.Revealed || pc.Side != side {
			continue
		}
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				if b.IsValidMove(pc, Pos{Row: r, Col: c}) {
					return true
				}
			}
		}
	}
	return false
}
