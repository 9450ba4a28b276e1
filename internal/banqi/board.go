package banqi

import (
	"math/rand"
	"time"
)

const (
	Rows       = 4
	Cols       = 8
	NumSquares = Rows * Cols
	NumPieces  = 32
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// 每方的固定兵力配置
var sideSetup = []struct {
	pt    PieceType
	count int
}{
	{PieceGeneral, 1},
	{PieceAdvisor, 2},
	{PieceElephant, 2},
	{PieceChariot, 2},
	{PieceHorse, 2},
	{PieceCannon, 2},
	{PieceSoldier, 5},
}

// Board 32 枚棋子的集合。格子本身不存内容，占格关系由棋子的 Pos 推出。
type Board struct {
	Pieces []*Piece
}

// NewBoard 洗牌发子：两色各 16 枚按固定配置生成，均匀打乱后
// 背面朝下铺满 32 格。rng 可注入以便复现（传 nil 则用时间种子）。
func NewBoard(rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pieces := make([]*Piece, 0, NumPieces)
	for _, side := range []Side{Red, Black} {
		for _, s := range sideSetup {
			for i := 0; i < s.count; i++ {
				pieces = append(pieces, &Piece{Side: side, Type: s.pt})
			}
		}
	}

	rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})

	for i, pc := range pieces {
		pc.ID = i
		pc.Pos = Pos{Row: i / Cols, Col: i % Cols}
	}
	return &Board{Pieces: pieces}
}

// PieceAt 返回占据 pos 的活子，没有则返回 nil。
// 所有规则判断的占格查询都必须走这里：dying 的子对走法不可见。
func (b *Board) PieceAt(pos Pos) *Piece {
	for _, pc := range b.Pieces {
		if pc.Alive() && pc.Pos == pos {
			return pc
		}
	}
	return nil
}

func (b *Board) PieceByID(id int) *Piece {
	for _, pc := range b.Pieces {
		if pc.ID == id {
			return pc
		}
	}
	return nil
}

// LiveCount side 一方还剩多少活子（含未翻开的）
func (b *Board) LiveCount(side Side) int {
	n := 0
	for _, pc := range b.Pieces {
		if pc.Alive() && pc.Side == side {
			n++
		}
	}
	return n
}

// AnyHidden 盘上是否还有没翻开的活子
func (b *Board) AnyHidden() bool {
	for _, pc := range b.Pieces {
		if pc.Alive() && !pc.Revealed {
			return true
		}
	}
	return false
}
