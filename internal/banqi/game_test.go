package banqi

import (
	"errors"
	"math/rand"
	"testing"
)

func mustDecode(t *testing.T, s string) *Game {
	t.Helper()
	g, err := DecodeGame(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return g
}

func TestFirstFlipAssignsColors(t *testing.T) {
	// 暗卒(0,0)，其余只有红明車(3,7)
	g := mustDecode(t, "*s7/8/8/7R 0 - f")

	res, err := g.Flip(Pos{0, 0})
	if err != nil {
		t.Fatalf("flip: %v", err)
	}
	if !res.FirstFlip {
		t.Fatalf("expected first flip of the game")
	}
	if !res.Piece.Revealed || res.Piece.Type != PieceSoldier {
		t.Fatalf("flip should reveal the soldier: %+v", res.Piece)
	}
	if g.SeatColors[0] != Black || g.SeatColors[1] != Red {
		t.Fatalf("seat colors: got %v want [Black Red]", g.SeatColors)
	}
	if g.Phase != Playing {
		t.Fatalf("phase after first flip: got=%v want=Playing", g.Phase)
	}
	if g.ActiveSeat != 1 {
		t.Fatalf("turn should pass to seat 1, got %d", g.ActiveSeat)
	}
}

func TestFlipRejections(t *testing.T) {
	g := mustDecode(t, "*s6S/8/8/7r 0 r p")

	if _, err := g.Flip(Pos{0, 9}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("out of bounds flip: got err=%v", err)
	}
	if _, err := g.Flip(Pos{2, 2}); !errors.Is(err, ErrNoPieceThere) {
		t.Fatalf("empty cell flip: got err=%v", err)
	}
	if _, err := g.Flip(Pos{0, 7}); !errors.Is(err, ErrPieceNotHidden) {
		t.Fatalf("revealed piece flip: got err=%v", err)
	}
	if g.ActiveSeat != 0 {
		t.Fatalf("rejections must not advance the turn")
	}
}

func TestFlipAnyHiddenPieceRegardlessOfColor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewGame(rng)
	if _, err := g.Flip(Pos{2, 2}); err != nil {
		t.Fatalf("flip: %v", err)
	}
	// 第二翻由 1 号座执行，翻哪个暗子都行，包括对方颜色的
	if _, err := g.Flip(Pos{0, 5}); err != nil {
		t.Fatalf("second flip: %v", err)
	}
	if g.ActiveSeat != 0 {
		t.Fatalf("turn should alternate back to seat 0")
	}
}

func TestMoveTurnAlternatesAndSelectionGate(t *testing.T) {
	// 红車(1,3)，黑卒(3,0)，黑馬(3,7)，0 号座执红
	g := mustDecode(t, "8/3R4/8/s6h 0 r p")
	chariot := g.Board.PieceAt(Pos{1, 3})
	horse := g.Board.PieceAt(Pos{3, 7})

	// 1 号座的子此刻不可选
	if _, err := g.Move(horse.ID, Pos{2, 7}); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("opponent piece move: got err=%v", err)
	}

	if _, err := g.Move(chariot.ID, Pos{1, 4}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if g.ActiveSeat != 1 {
		t.Fatalf("turn should pass to seat 1")
	}

	// 现在轮到黑方，红車不可选
	if _, err := g.Move(chariot.ID, Pos{1, 5}); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("moving out of turn: got err=%v", err)
	}
	if _, err := g.Move(horse.ID, Pos{2, 7}); err != nil {
		t.Fatalf("black move: %v", err)
	}
}

func TestCaptureLifecycle(t *testing.T) {
	// 红車(1,3)，黑明卒(1,4)，黑明馬(3,7)
	g := mustDecode(t, "8/3Rs3/8/7h 0 r p")
	chariot := g.Board.PieceAt(Pos{1, 3})
	victim := g.Board.PieceAt(Pos{1, 4})

	res, err := g.Move(chariot.ID, Pos{1, 4})
	if err != nil {
		t.Fatalf("capture move: %v", err)
	}
	if res.Captured != victim {
		t.Fatalf("capture event should name the victim")
	}
	if !victim.Dying || victim.Dead {
		t.Fatalf("victim should be dying, not dead: %+v", victim)
	}
	// 吃子只占一手
	if g.ActiveSeat != 1 {
		t.Fatalf("capture is a single turn, active seat=%d", g.ActiveSeat)
	}
	// 落点归吃子方占据
	if g.Board.PieceAt(Pos{1, 4}) != chariot {
		t.Fatalf("mover should occupy the target cell")
	}

	if err := g.FinalizeCapture(victim.ID); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !victim.Dead || victim.Dying {
		t.Fatalf("victim should be dead after finalize: %+v", victim)
	}
	if err := g.FinalizeCapture(victim.ID); !errors.Is(err, ErrNoPieceThere) {
		t.Fatalf("double finalize: got err=%v", err)
	}
}

func TestAnnihilationWinsBeforeTurnAdvance(t *testing.T) {
	// 黑方只剩 (1,4) 的明将
	g := mustDecode(t, "8/3Sg3/8/8 0 r p")
	soldier := g.Board.PieceAt(Pos{1, 3})

	if _, err := g.Move(soldier.ID, Pos{1, 4}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if g.Phase != GameOver {
		t.Fatalf("phase: got=%v want=GameOver", g.Phase)
	}
	if w, ok := g.Winner(); !ok || w != 0 {
		t.Fatalf("winner: got=(%d,%v) want=(0,true)", w, ok)
	}
	if g.ActiveSeat != 0 {
		t.Fatalf("winning move must not advance the turn")
	}
}

func TestStalemateLosesForSideToMove(t *testing.T) {
	// 黑将(0,0)被红卒(0,1)(1,0)锁死——将吃不了卒；红車(3,7)随便走一步
	g := mustDecode(t, "gS6/S7/8/7R 0 r p")
	chariot := g.Board.PieceAt(Pos{3, 7})

	if g.Board.HasAnyLegalMove(Black) {
		t.Fatalf("locked black should have no legal move")
	}
	if _, err := g.Move(chariot.ID, Pos{3, 6}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if w, ok := g.Winner(); !ok || w != 0 {
		t.Fatalf("stalemated opponent should lose: got=(%d,%v)", w, ok)
	}
}

func TestHasAnyLegalMoveTrueWhileAnythingHidden(t *testing.T) {
	// 黑将照样被锁死，但盘上还有一个暗子
	g := mustDecode(t, "gS6/S7/8/*r6R 0 r p")
	if !g.Board.HasAnyLegalMove(Black) {
		t.Fatalf("hidden piece means a flip is always available")
	}
	if !g.Board.HasAnyLegalMove(Red) {
		t.Fatalf("hidden piece counts for either color")
	}
}

func TestSurrender(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(5)))
	if err := g.Surrender(2); !errors.Is(err, ErrUnknownSeat) {
		t.Fatalf("bad seat: got err=%v", err)
	}
	if err := g.Surrender(1); err != nil {
		t.Fatalf("surrender: %v", err)
	}
	if w, ok := g.Winner(); !ok || w != 0 {
		t.Fatalf("winner after surrender: got=(%d,%v)", w, ok)
	}

	// 终局后一切动作拒绝
	if _, err := g.Flip(Pos{0, 0}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("flip after game over: got err=%v", err)
	}
	if _, err := g.Move(0, Pos{0, 1}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after game over: got err=%v", err)
	}
	if err := g.Surrender(0); !errors.Is(err, ErrGameOver) {
		t.Fatalf("surrender after game over: got err=%v", err)
	}
}

func TestResetReturnsToFreshDeal(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(5)))
	if _, err := g.Flip(Pos{1, 1}); err != nil {
		t.Fatalf("flip: %v", err)
	}
	_ = g.Surrender(0)

	g.Reset(rand.New(rand.NewSource(6)))
	if g.Phase != AwaitingFirstFlip {
		t.Fatalf("phase after reset: %v", g.Phase)
	}
	if g.SeatColors[0] != NoSide || g.SeatColors[1] != NoSide {
		t.Fatalf("colors should be unassigned after reset: %v", g.SeatColors)
	}
	if g.ActiveSeat != 0 {
		t.Fatalf("seat 0 opens after reset")
	}
	for _, pc := range g.Board.Pieces {
		if pc.Revealed || !pc.Alive() {
			t.Fatalf("reset deal should be fully hidden and alive: %+v", pc)
		}
	}
}

func TestRandomPlayoutsTerminateCleanly(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for game := 0; game < 10; game++ {
		g := NewGame(rng)
		for step := 0; step < 400; step++ {
			if g.Phase == GameOver {
				break
			}
			acts := g.LegalActions()
			if len(acts) == 0 {
				t.Fatalf("game %d: no legal actions but game not over", game)
			}
			applyRandomAction(t, g, rng, acts)
		}
		if g.Phase == GameOver {
			if w, ok := g.Winner(); !ok || (w != 0 && w != 1) {
				t.Fatalf("game %d: bad winner (%d,%v)", game, w, ok)
			}
		}
	}
}
