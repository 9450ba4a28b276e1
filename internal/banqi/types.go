package banqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceGeneral            // 帅 / 将
	PieceAdvisor            // 仕 / 士
	PieceElephant           // 相 / 象
	PieceChariot            // 俥 / 車
	PieceHorse              // 傌 / 馬
	PieceCannon             // 炮 / 砲
	PieceSoldier            // 兵 / 卒
)

// Rank 返回吃子比较用的数值等级。
// 炮的 2 只是占位：炮的走法完全走特判分支，永远不会进入等级比较。
func (pt PieceType) Rank() int {
	switch pt {
	case PieceGeneral:
		return 7
	case PieceAdvisor:
		return 6
	case PieceElephant:
		return 5
	case PieceChariot:
		return 4
	case PieceHorse:
		return 3
	case PieceCannon:
		return 2
	case PieceSoldier:
		return 1
	}
	return 0
}

// Pos 棋盘坐标，row ∈ [0,4)，col ∈ [0,8)
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Piece 一枚棋子。暗棋的棋子有身份，不像明棋那样用格子编码就够了：
// 翻开前双方都不知道一个格子上是什么，所以棋子是实体、格子只是位置。
type Piece struct {
	ID       int
	Side     Side
	Type     PieceType
	Pos      Pos
	Revealed bool // 已翻开（正面朝上）
	Dying    bool // 被吃、等待表现层移除；对规则而言已不占格
	Dead     bool // 已永久离场
}

// Alive 活子：没死也不在移除中。所有占格/可选/可吃判断都只看活子。
func (p *Piece) Alive() bool {
	return !p.Dead && !p.Dying
}

// Phase 对局阶段
type Phase int8

const (
	AwaitingFirstFlip Phase = iota // 尚未翻出第一枚棋子
	Playing
	GameOver
)
