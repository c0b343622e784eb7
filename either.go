package deciders

// Either holds exactly one of two alternatives. The zero value is a Left
// holding the zero value of L.
type Either[L any, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L any, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L any, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}
