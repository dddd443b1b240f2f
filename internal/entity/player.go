package entity

// Player is one of the two participants. Name and mark are fixed at creation.
type Player struct {
	name  string
	mark  Mark
	score int
}

func NewPlayer(name string, mark Mark) *Player {
	return &Player{
		name: name,
		mark: mark,
	}
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Mark() Mark {
	return that.mark
}

func (that *Player) Score() int {
	return that.score
}

func (that *Player) AddWin() {
	that.score++
}
