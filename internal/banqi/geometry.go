package banqi

// NotLinear countObstacles 的哨兵值：两格不同行也不同列
const NotLinear = -1

func sameCell(a, b Pos) bool {
	return a.Row == b.Row && a.Col == b.Col
}

// adjacent 曼哈顿距离为 1 才算相邻；斜向永远不相邻
func adjacent(a, b Pos) bool {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// countObstacles 统计 from 和 to 之间（开区间）有几个活子。
// 只在同行或同列时有意义，否则返回 NotLinear。
// 未翻开的子一样算障碍——炮架不挑明暗。
func (b *Board) countObstacles(from, to Pos) int {
	if from.Row != to.Row && from.Col != to.Col {
		return NotLinear
	}
	dr, dc := 0, 0
	switch {
	case from.Row == to.Row && to.Col > from.Col:
		dc = 1
	case from.Row == to.Row:
		dc = -1
	case to.Row > from.Row:
		dr = 1
	default:
		dr = -1
	}

	n := 0
	r, c := from.Row+dr, from.Col+dc
	for r != to.Row || c != to.Col {
		if b.PieceAt(Pos{Row: r, Col: c}) != nil {
			n++
		}
		r += dr
		c += dc
	}
	return n
}
