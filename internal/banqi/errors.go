package banqi

import "errors"

// 所有引擎操作都是全函数：非法输入返回显式拒绝，绝不改盘面。
var (
	ErrOutOfBounds         = errors.New("target out of bounds")
	ErrNoPieceThere        = errors.New("no piece at that cell")
	ErrPieceNotHidden      = errors.New("piece already revealed")
	ErrNotYourTurn         = errors.New("piece not selectable this turn")
	ErrIllegalGeometry     = errors.New("illegal move geometry")
	ErrCannotCaptureHidden = errors.New("cannot capture a hidden piece")
	ErrRankTooLow          = errors.New("attacker rank too low")
	ErrGameOver            = errors.New("game already over")
	ErrUnknownPiece        = errors.New("unknown piece id")
	ErrUnknownSeat         = errors.New("unknown seat")
)
