package banqi

import "math/rand"

// Game 一盘暗棋：盘面 + 座位定色 + 轮转状态。
// 引擎本身同步、无 IO；调用方负责串行化（同一盘不允许并发 Flip/Move）。
type Game struct {
	Board      *Board
	Phase      Phase
	ActiveSeat int     // 0 或 1
	SeatColors [2]Side // 首翻之前都是 NoSide
	WinnerSeat int     // -1 表示还没分出胜负
	hash       uint64
}

// FlipResult 翻子结果
type FlipResult struct {
	Piece     *Piece
	FirstFlip bool // 是否本局第一翻（触发定色）
}

// MoveResult 走子结果。Captured 非 nil 表示这步吃掉了谁——
// 这是同步发出的事件，吃子的最终移除时机归表现层管。
type MoveResult struct {
	Piece    *Piece
	From     Pos
	Captured *Piece
}

// NewGame 开一盘新棋：全部棋子背面朝下，座位未定色，0 号座先行动。
func NewGame(rng *rand.Rand) *Game {
	g := &Game{
		Board:      NewBoard(rng),
		Phase:      AwaitingFirstFlip,
		ActiveSeat: 0,
		SeatColors: [2]Side{NoSide, NoSide},
		WinnerSeat: -1,
	}
	g.hash = g.CalculateHash()
	return g
}

// Reset 整盘重开：重新洗牌发子，回到等待首翻。
func (g *Game) Reset(rng *rand.Rand) {
	*g = *NewGame(rng)
}

// SeatColor seat 座位的颜色，未定色返回 NoSide
func (g *Game) SeatColor(seat int) Side {
	if seat < 0 || seat > 1 {
		return NoSide
	}
	return g.SeatColors[seat]
}

// Winner 胜方座位；尚未终局时 ok=false
func (g *Game) Winner() (seat int, ok bool) {
	if g.Phase != GameOver {
		return -1, false
	}
	return g.WinnerSeat, true
}

// Flip 翻开 pos 上的暗子。任何暗子都能翻，不分颜色。
// 本局第一翻给两个座位定色：翻子的座位得所翻棋子的颜色，对座得另一色。
func (g *Game) Flip(pos Pos) (*FlipResult, error) {
	if g.Phase == GameOver {
		return nil, ErrGameOver
	}
	if !onBoard(pos.Row, pos.Col) {
		return nil, ErrOutOfBounds
	}
	pc := g.Board.PieceAt(pos)
	if pc == nil {
		return nil, ErrNoPieceThere
	}
	if pc.Revealed {
		return nil, ErrPieceNotHidden
	}

	g.hash ^= pieceHashKey(pc.Side, pc.Type, false, pc.Pos)
	pc.Revealed = true
	g.hash ^= pieceHashKey(pc.Side, pc.Type, true, pc.Pos)

	res := &FlipResult{Piece: pc}
	if g.Phase == AwaitingFirstFlip {
		res.FirstFlip = true
		g.SeatColors[g.ActiveSeat] = pc.Side
		g.SeatColors[1-g.ActiveSeat] = opposite(pc.Side)
		g.Phase = Playing
	}

	g.endTurn(g.ActiveSeat)
	return res, nil
}

// Move 让 pieceID 走到 to。先过选子门，再过走法判断；
// 落点有敌子就吃（标记 dying，移除时机由调用方通过 FinalizeCapture 驱动）。
func (g *Game) Move(pieceID int, to Pos) (*MoveResult, error) {
	if g.Phase == GameOver {
		return nil, ErrGameOver
	}
	pc := g.Board.PieceByID(pieceID)
	if pc == nil || !pc.Alive() {
		return nil, ErrUnknownPiece
	}
	if !CanSelectPiece(pc, g.SeatColor(g.ActiveSeat)) {
		return nil, ErrNotYourTurn
	}
	if err := g.Board.validateMove(pc, to); err != nil {
		return nil, err
	}

	res := &MoveResult{Piece: pc, From: pc.Pos}
	if victim := g.Board.PieceAt(to); victim != nil {
		// 吃子先于 dying 结算：此刻 victim 还占着格，标记之后才对走法透明
		victim.Dying = true
		g.hash ^= pieceHashKey(victim.Side, victim.Type, true, victim.Pos)
		res.Captured = victim
	}

	g.hash ^= pieceHashKey(pc.Side, pc.Type, true, pc.Pos)
	pc.Pos = to
	g.hash ^= pieceHashKey(pc.Side, pc.Type, true, pc.Pos)

	g.endTurn(g.ActiveSeat)
	return res, nil
}

// Surrender seat 认输，对座直接获胜。
func (g *Game) Surrender(seat int) error {
	if g.Phase == GameOver {
		return ErrGameOver
	}
	if seat != 0 && seat != 1 {
		return ErrUnknownSeat
	}
	g.declareWinner(1 - seat)
	return nil
}

// FinalizeCapture 把一枚 dying 的子转成 dead。
// 由表现层在移除动画结束后调用；终局之后也允许（收尾吃子还没落定）。
func (g *Game) FinalizeCapture(pieceID int) error {
	pc := g.Board.PieceByID(pieceID)
	if pc == nil {
		return ErrUnknownPiece
	}
	if !pc.Dying {
		return ErrNoPieceThere
	}
	pc.Dying = false
	pc.Dead = true
	return nil
}

// endTurn 动作落定后的终局检查与换手，顺序固定：
//  1. 对方活子清零 → 行动方立刻获胜，不再换手；
//  2. 换手；
//  3. 新的行动方无任何可行动作 → 对座获胜（困毙）。
func (g *Game) endTurn(moverSeat int) {
	oppColor := g.SeatColor(1 - moverSeat)
	if oppColor != NoSide && g.Board.LiveCount(oppColor) == 0 {
		g.declareWinner(moverSeat)
		return
	}

	g.advanceSeat()

	next := g.SeatColor(g.ActiveSeat)
	if !g.Board.HasAnyLegalMove(next) {
		g.declareWinner(1 - g.ActiveSeat)
	}
}

func (g *Game) advanceSeat() {
	initZobrist()
	g.ActiveSeat = 1 - g.ActiveSeat
	g.hash ^= zobristSeat
}

func (g *Game) declareWinner(seat int) {
	g.Phase = GameOver
	g.WinnerSeat = seat
}
