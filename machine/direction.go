package machine

import "fmt"

// Direction selects one of the two head movement policies of a rule.
type Direction byte

const (
	// Right moves the head toward index 0, materializing a Blank at the front of the tape when the head is already there.
	Right Direction = 'R'
	// Left moves the head toward the end of the tape, materializing a Blank at the back when the head runs past it.
	Left Direction = 'L'
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "R"
	case Left:
		return "L"
	}
	return fmt.Sprintf("Direction(%d)", byte(d))
}

func (d Direction) valid() bool {
	return d == Right || d == Left
}

func ParseDirection(str string) (Direction, error) {
	switch str {
	case "R", "r":
		return Right, nil
	case "L", "l":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, str)
}
