package banqi

import "sync"

const zobristPieceTypes = 8 // PieceType 范围 [1..7]，0 保留空位不用

var (
	zobristOnce sync.Once

	// [side][type][revealed][square]：暗棋比明棋多一维——同一枚子
	// 翻开前后是两个不同的局面特征
	zobristPieces [2][zobristPieceTypes][2][NumSquares]uint64
	zobristSeat   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for rv := 0; rv < 2; rv++ {
					for sq := 0; sq < NumSquares; sq++ {
						zobristPieces[side][pt][rv][sq] = next()
					}
				}
			}
		}
		zobristSeat = next()
	})
}

func pieceHashKey(side Side, pt PieceType, revealed bool, pos Pos) uint64 {
	initZobrist()

	if side != Red && side != Black {
		return 0
	}
	if pt <= 0 || int(pt) >= zobristPieceTypes {
		return 0
	}
	if !onBoard(pos.Row, pos.Col) {
		return 0
	}
	rv := 0
	if revealed {
		rv = 1
	}
	return zobristPieces[side][pt][rv][pos.Row*Cols+pos.Col]
}

// CalculateHash 全量计算当前局面的哈希：所有活子 + 行动座位。
func (g *Game) CalculateHash() uint64 {
	var h uint64
	for _, pc := range g.Board.Pieces {
		if !pc.Alive() {
			continue
		}
		h ^= pieceHashKey(pc.Side, pc.Type, pc.Revealed, pc.Pos)
	}
	if g.ActiveSeat == 1 {
		initZobrist()
		h ^= zobristSeat
	}
	return h
}

// Hash 返回增量维护的局面哈希。
func (g *Game) Hash() uint64 {
	return g.hash
}
