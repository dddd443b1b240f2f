package entity

// Mark is the token held by a cell.
type Mark int

const (
	Empty Mark = iota
	PlayerOne
	PlayerTwo
)

// Symbol returns the rendered form of the mark: "-", "o" or "x".
func (that Mark) Symbol() string {
	switch that {
	case PlayerOne:
		return "o"
	case PlayerTwo:
		return "x"
	default:
		return "-"
	}
}

func (that Mark) String() string {
	return that.Symbol()
}

func (that Mark) IsValid() bool {
	return that == Empty || that == PlayerOne || that == PlayerTwo
}

// Cell is one square of the board.
type Cell struct {
	mark Mark
}

// SetMark overwrites the stored mark unconditionally. Callers keep the write-once discipline.
func (that *Cell) SetMark(mark Mark) {
	that.mark = mark
}

func (that *Cell) Mark() Mark {
	return that.mark
}

func (that *Cell) IsEmpty() bool {
	return that.mark == Empty
}
