package deciders

// FallibleConverter translates between alphabets that only partially
// overlap. The boolean reports whether the value had a translation; a miss
// is not an error.
type FallibleConverter[From any, To any] interface {
	Convert(value From) (To, bool)
}

type FallibleConverterFunction[From any, To any] func(value From) (To, bool)

func (f FallibleConverterFunction[From, To]) Convert(value From) (To, bool) {
	return f(value)
}

// InfallibleConverter translates values that always have a home on the
// other side.
type InfallibleConverter[From any, To any] interface {
	Convert(value From) To
}

type InfallibleConverterFunction[From any, To any] func(value From) To

func (f InfallibleConverterFunction[From, To]) Convert(value From) To {
	return f(value)
}
