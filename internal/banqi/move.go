package banqi

// CanSelectPiece 选子门：已翻开、本方已定色、且颜色是本方的才可选。
// 这一关在 IsValidMove 之前——挡掉暗子和对方子的是它，不是走法判断。
func CanSelectPiece(p *Piece, seatColor Side) bool {
	return p != nil && p.Alive() && p.Revealed && seatColor != NoSide && p.Side == seatColor
}

// IsValidMove p 走到 to 是否合法。p 必须是活的已翻开棋子（由选子门保证）。
func (b *Board) IsValidMove(p *Piece, to Pos) bool {
	return b.validateMove(p, to) == nil
}

// validateMove 与 IsValidMove 相同的判断，但带拒绝原因。不改任何状态。
func (b *Board) validateMove(p *Piece, to Pos) error {
	if !onBoard(to.Row, to.Col) {
		return ErrOutOfBounds
	}
	if sameCell(p.Pos, to) {
		return ErrIllegalGeometry
	}
	if p.Type == PieceCannon {
		return b.validateCannonMove(p, to)
	}

	// 炮以外的所有棋子只能走一格
	if !adjacent(p.Pos, to) {
		return ErrIllegalGeometry
	}
	target := b.PieceAt(to)
	if target == nil {
		return nil
	}
	if !target.Revealed {
		return ErrCannotCaptureHidden
	}
	if target.Side == p.Side {
		return ErrIllegalGeometry
	}

	// 等级规则，外加两条硬性例外：兵吃将、将不吃兵
	if p.Type == PieceSoldier && target.Type == PieceGeneral {
		return nil
	}
	if p.Type == PieceGeneral && target.Type == PieceSoldier {
		return ErrRankTooLow
	}
	if p.Type.Rank() < target.Type.Rank() {
		return ErrRankTooLow
	}
	return nil
}

// validateCannonMove 炮的特判分支：
// 不吃子时只能相邻走一格到空格；吃子必须隔山——同行或同列、
// 中间恰好一个子（明暗不限）、目标是已翻开的敌子。
func (b *Board) validateCannonMove(p *Piece, to Pos) error {
	target := b.PieceAt(to)
	if target == nil {
		if !adjacent(p.Pos, to) {
			return ErrIllegalGeometry
		}
		return nil
	}

	if !target.Revealed {
		return ErrCannotCaptureHidden
	}
	if target.Side == p.Side {
		return ErrIllegalGeometry
	}
	if b.countObstacles(p.Pos, to) != 1 {
		return ErrIllegalGeometry
	}
	return nil
}
