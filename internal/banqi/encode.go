package banqi

import (
	"errors"
	"strings"
	"unicode"
)

// 简单 FEN-like：4 行用“/”隔开，空格用数字压缩，暗子在字母前加“*”。
// 后面三段依次是行动座位、0 号座颜色（- 表示未定色）、阶段。
// 阶段：f=等首翻，p=对局中，w0/w1=终局及胜方座位。
// dying 的子视同已移除——那是表现层的临时覆盖层，不进编码。

var ErrInvalidEncoding = errors.New("invalid board encoding")

var letterToPieceType = map[rune]PieceType{
	'g': PieceGeneral,  // 将 general
	'a': PieceAdvisor,  // 士 advisor
	'e': PieceElephant, // 象 elephant
	'r': PieceChariot,  // 車 chariot
	'h': PieceHorse,    // 馬 horse
	'c': PieceCannon,   // 砲 cannon
	's': PieceSoldier,  // 卒 soldier
}

func pieceToChar(pc *Piece) rune {
	var base rune
	for k, v := range letterToPieceType {
		if v == pc.Type {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if pc.Side == Red {
		return unicode.ToUpper(base)
	}
	return base
}

func sideToChar(side Side) byte {
	switch side {
	case Red:
		return 'r'
	case Black:
		return 'b'
	}
	return '-'
}

// EncodeGame 把整盘对局编码成一行字符串。
func EncodeGame(g *Game) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := g.Board.PieceAt(Pos{Row: r, Col: c})
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if !pc.Revealed {
				sb.WriteByte('*')
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(byte('0' + g.ActiveSeat))
	sb.WriteByte(' ')
	sb.WriteByte(sideToChar(g.SeatColors[0]))
	sb.WriteByte(' ')
	switch g.Phase {
	case AwaitingFirstFlip:
		sb.WriteByte('f')
	case Playing:
		sb.WriteByte('p')
	default:
		sb.WriteByte('w')
		sb.WriteByte(byte('0' + g.WinnerSeat))
	}
	return sb.String()
}

// DecodeGame 解析 EncodeGame 的输出。棋子编号按扫描顺序重新分配。
func DecodeGame(s string) (*Game, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 4 {
		return nil, ErrInvalidEncoding
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidEncoding
	}

	var pieces []*Piece
	for r := 0; r < Rows; r++ {
		c := 0
		hidden := false
		for _, ch := range rows[r] {
			if ch == '*' {
				hidden = true
				continue
			}
			if c >= Cols {
				return nil, ErrInvalidEncoding
			}
			if ch >= '1' && ch <= '8' {
				if hidden {
					return nil, ErrInvalidEncoding
				}
				c += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, ErrInvalidEncoding
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			pieces = append(pieces, &Piece{
				ID:       len(pieces),
				Side:     side,
				Type:     pt,
				Pos:      Pos{Row: r, Col: c},
				Revealed: !hidden,
			})
			hidden = false
			c++
		}
		if c != Cols || hidden {
			return nil, ErrInvalidEncoding
		}
	}

	if len(parts[1]) != 1 || (parts[1] != "0" && parts[1] != "1") {
		return nil, ErrInvalidEncoding
	}
	seat := int(parts[1][0] - '0')

	var seat0 Side
	switch parts[2] {
	case "r":
		seat0 = Red
	case "b":
		seat0 = Black
	case "-":
		seat0 = NoSide
	default:
		return nil, ErrInvalidEncoding
	}

	g := &Game{
		Board:      &Board{Pieces: pieces},
		ActiveSeat: seat,
		SeatColors: [2]Side{seat0, opposite(seat0)},
		WinnerSeat: -1,
	}
	switch {
	case parts[3] == "f":
		if seat0 != NoSide {
			return nil, ErrInvalidEncoding
		}
		g.Phase = AwaitingFirstFlip
	case parts[3] == "p":
		g.Phase = Playing
	case parts[3] == "w0" || parts[3] == "w1":
		g.Phase = GameOver
		g.WinnerSeat = int(parts[3][1] - '0')
	default:
		return nil, ErrInvalidEncoding
	}
	g.hash = g.CalculateHash()
	return g, nil
}
