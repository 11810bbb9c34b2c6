package tranche

import "iter"

// Cursor is a read-only view over buf bounded by front and back.
// 0 <= front <= back <= len(buf) always holds; the zero value is an empty
// cursor. Copying a Cursor forks it: both copies see the same elements and
// advance independently.
type Cursor[T any] struct {
	buf   []T
	front int
	back  int
}

// cursor lets wrapper types embed a Cursor without exposing it as an
// assignable field.
type cursor[T any] = Cursor[T]

// New returns a cursor over all of buf. buf must not be modified while the
// cursor or anything taken from it is in use.
func New[T any](buf []T) Cursor[T] {
	return Cursor[T]{buf: buf, back: len(buf)}
}

// Len returns the number of elements left between the two boundaries.
func (c Cursor[T]) Len() int {
	return c.back - c.front
}

func (c Cursor[T]) IsEmpty() bool {
	return c.front == c.back
}

// PopFront returns the first element and advances the front boundary.
func (c *Cursor[T]) PopFront() (T, error) {
	v, err := c.PeekFront()
	if err != nil {
		return v, err
	}
	c.front++
	return v, nil
}

// PopBack returns the last element and retreats the back boundary.
func (c *Cursor[T]) PopBack() (T, error) {
	v, err := c.PeekBack()
	if err != nil {
		return v, err
	}
	c.back--
	return v, nil
}

func (c Cursor[T]) PeekFront() (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, endError(1, 0)
	}
	return c.buf[c.front], nil
}

func (c Cursor[T]) PeekBack() (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, endError(1, 0)
	}
	return c.buf[c.back-1], nil
}

// TakeFront splits off the first n elements as a new cursor and advances
// the front boundary past them. If fewer than n elements remain nothing is
// consumed.
func (c *Cursor[T]) TakeFront(n int) (Cursor[T], error) {
	l := c.Len()
	if n < 0 || n > l {
		return Cursor[T]{}, endError(n, l)
	}
	sub := Cursor[T]{buf: c.buf, front: c.front, back: c.front + n}
	c.front += n
	return sub, nil
}

// TakeBack splits off the last n elements as a new cursor and retreats the
// back boundary before them. If fewer than n elements remain nothing is
// consumed.
func (c *Cursor[T]) TakeBack(n int) (Cursor[T], error) {
	l := c.Len()
	if n < 0 || n > l {
		return Cursor[T]{}, endError(n, l)
	}
	sub := Cursor[T]{buf: c.buf, front: c.back - n, back: c.back}
	c.back -= n
	return sub, nil
}

// Remaining returns the unconsumed elements as a slice sharing the
// cursor's backing array. Its capacity is clipped to its length so that
// appending to it never overwrites elements past the back boundary.
func (c Cursor[T]) Remaining() []T {
	return c.buf[c.front:c.back:c.back]
}

// Drain yields the remaining elements front to back, consuming each one
// as it goes. Stopping early leaves the rest in the cursor.
func (c *Cursor[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !c.IsEmpty() {
			v := c.buf[c.front]
			c.front++
			if !yield(v) {
				return
			}
		}
	}
}

// DrainBack is Drain from the back boundary.
func (c *Cursor[T]) DrainBack() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !c.IsEmpty() {
			c.back--
			if !yield(c.buf[c.back]) {
				return
			}
		}
	}
}
