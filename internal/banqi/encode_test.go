package banqi

import (
	"errors"
	"math/rand"
	"testing"
)

func TestEncodeFreshGame(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(21)))
	s := EncodeGame(g)
	got, err := DecodeGame(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	if got.Phase != AwaitingFirstFlip || got.ActiveSeat != 0 {
		t.Fatalf("fresh game trailer lost: %q", s)
	}
	if got.SeatColors[0] != NoSide || got.SeatColors[1] != NoSide {
		t.Fatalf("colors should decode unassigned: %v", got.SeatColors)
	}
	assertSamePosition(t, g, got)
}

func TestEncodeRoundTripAcrossPlayout(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	g := NewGame(rng)
	for step := 0; step < 80 && g.Phase != GameOver; step++ {
		acts := g.LegalActions()
		if len(acts) == 0 {
			break
		}
		applyRandomAction(t, g, rng, acts)

		s := EncodeGame(g)
		got, err := DecodeGame(s)
		if err != nil {
			t.Fatalf("step %d: decode %q: %v", step, s, err)
		}
		if got.ActiveSeat != g.ActiveSeat || got.Phase != g.Phase || got.SeatColors != g.SeatColors {
			t.Fatalf("step %d: trailer mismatch for %q", step, s)
		}
		if got.WinnerSeat != g.WinnerSeat {
			t.Fatalf("step %d: winner mismatch for %q", step, s)
		}
		assertSamePosition(t, g, got)
	}
}

// assertSamePosition 比较两盘的活子布局（编号允许不同）。
func assertSamePosition(t *testing.T, a, b *Game) {
	t.Helper()
	type cell struct {
		side     Side
		pt       PieceType
		revealed bool
	}
	snapshot := func(g *Game) map[Pos]cell {
		m := map[Pos]cell{}
		for _, pc := range g.Board.Pieces {
			if !pc.Alive() {
				continue
			}
			m[pc.Pos] = cell{pc.Side, pc.Type, pc.Revealed}
		}
		return m
	}
	sa, sb := snapshot(a), snapshot(b)
	if len(sa) != len(sb) {
		t.Fatalf("live piece count differs: %d vs %d", len(sa), len(sb))
	}
	for pos, ca := range sa {
		if sb[pos] != ca {
			t.Fatalf("cell %+v differs: %+v vs %+v", pos, ca, sb[pos])
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8",        // 缺尾段
		"8/8/8 0 - f",    // 行数不对
		"9/8/8/8 0 - f",  // 行太长
		"7/8/8/8 0 - f",  // 行太短
		"x7/8/8/8 0 - f", // 未知棋子字母
		"*8/8/8/8 0 - f", // * 后面不是棋子
		"8/8/8/8 2 - f",  // 座位号非法
		"8/8/8/8 0 q f",  // 颜色非法
		"8/8/8/8 0 - z",  // 阶段非法
		"8/8/8/8 0 r f",  // 等首翻不该已定色
	}
	for _, s := range bad {
		if _, err := DecodeGame(s); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("decode %q: got err=%v want ErrInvalidEncoding", s, err)
		}
	}
}

func TestEncodeSkipsDyingPieces(t *testing.T) {
	g := mustDecode(t, "8/3Rs3/8/7h 0 r p")
	chariot := g.Board.PieceAt(Pos{1, 3})
	if _, err := g.Move(chariot.ID, Pos{1, 4}); err != nil {
		t.Fatalf("move: %v", err)
	}

	s := EncodeGame(g)
	want := "8/4R3/8/7h 1 r p"
	if s != want {
		t.Fatalf("encode after capture: got=%q want=%q", s, want)
	}
}
