package deciders

// Pair is the product state of two combined systems.
type Pair[A any, B any] struct {
	First  A
	Second B
}

func PairOf[A any, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}
