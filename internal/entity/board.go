package entity

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize - number of cells on the board, indexed row-major.
const BoardSize = 9

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - one snapshot of the 3x3 grid. It is a value type, so every copy is independent.
type Board [BoardSize]Mark

func (that Mark) String() string {
	return string(that)
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// MarkForStep - returns who moves next while the board sits at the given step.
// X moves first, so even steps belong to X.
func MarkForStep(step int) Mark {
	if step%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

// Winner - returns the mark owning the first complete line, or EmptyCell.
// A full board without a line also yields EmptyCell.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsEmptyCell(cell int) bool {
	if cell < 0 || cell >= BoardSize {
		return false
	}

	return that[cell] == EmptyCell
}

// Place - returns a copy of the board with mark written at cell.
func (that Board) Place(cell int, mark Mark) Board {
	next := that
	next[cell] = mark

	return next
}

// Diff - returns the indices where the two boards disagree.
func (that Board) Diff(other Board) []int {
	var cells []int
	for i := range that {
		if that[i] != other[i] {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Strings() [BoardSize]string {
	var out [BoardSize]string
	for i, cell := range that {
		out[i] = cell.String()
	}

	return out
}
