package tranche

// Based is a Cursor that remembers where it started, so callers can tell
// how far into the original buffer the front boundary has moved.
// The cursor is embedded unexported: only its own operations move it, so
// the front never crosses the origin.
type Based[T any] struct {
	cursor[T]
	base int
}

func NewBased[T any](buf []T) Based[T] {
	return BasedOn(New(buf))
}

// BasedOn returns a Based cursor whose origin is c's current front.
func BasedOn[T any](c Cursor[T]) Based[T] {
	return Based[T]{cursor: c, base: c.front}
}

// Offset returns how many elements lie between the origin and the front
// boundary.
func (b Based[T]) Offset() int {
	return offset(b.base, b.front)
}

// Unbased returns a copy of the underlying cursor without its origin.
func (b Based[T]) Unbased() Cursor[T] {
	return b.cursor
}

// TakeFront is Cursor.TakeFront keeping the same origin.
func (b *Based[T]) TakeFront(n int) (Based[T], error) {
	sub, err := b.cursor.TakeFront(n)
	if err != nil {
		return Based[T]{}, err
	}
	return Based[T]{cursor: sub, base: b.base}, nil
}

// TakeBack is Cursor.TakeBack keeping the same origin.
func (b *Based[T]) TakeBack(n int) (Based[T], error) {
	sub, err := b.cursor.TakeBack(n)
	if err != nil {
		return Based[T]{}, err
	}
	return Based[T]{cursor: sub, base: b.base}, nil
}

type byteCursor = ByteCursor

// BasedBytes is the Based form of ByteCursor.
type BasedBytes struct {
	byteCursor
	base int
}

func NewBasedBytes(buf []byte) BasedBytes {
	return BasedBytesOn(NewBytes(buf))
}

func BasedBytesOn(c ByteCursor) BasedBytes {
	return BasedBytes{byteCursor: c, base: c.front}
}

func (b BasedBytes) Offset() int {
	return offset(b.base, b.front)
}

func (b BasedBytes) Unbased() ByteCursor {
	return b.byteCursor
}

func (b *BasedBytes) TakeFront(n int) (BasedBytes, error) {
	sub, err := b.byteCursor.TakeFront(n)
	if err != nil {
		return BasedBytes{}, err
	}
	return BasedBytes{byteCursor: sub, base: b.base}, nil
}

func (b *BasedBytes) TakeBack(n int) (BasedBytes, error) {
	sub, err := b.byteCursor.TakeBack(n)
	if err != nil {
		return BasedBytes{}, err
	}
	return BasedBytes{byteCursor: sub, base: b.base}, nil
}

func offset(base, front int) int {
	if front < base {
		panic("tranche: front boundary moved before origin")
	}
	return front - base
}
