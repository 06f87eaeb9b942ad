package theory

// Letter is one of the seven natural note names.
type Letter uint8

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// baseOffset maps each letter to its chromatic offset from C.
var baseOffset = [7]int{0, 2, 4, 5, 7, 9, 11}

// Letters returns all seven letters in order from C.
func Letters() []Letter {
	return []Letter{C, D, E, F, G, A, B}
}

func (l Letter) String() string {
	switch l {
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case F:
		return "F"
	case G:
		return "G"
	case A:
		return "A"
	case B:
		return "B"
	}
	panic("theory: invalid letter")
}
