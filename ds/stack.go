package ds

type Stack[T any] struct {
	slice []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		slice: make([]T, 0),
	}
}

func (r *Stack[T]) Len() int {
	return len(r.slice)
}

func (r *Stack[T]) IsEmpty() bool {
	return len(r.slice) == 0
}

func (r *Stack[T]) Push(t T) T {
	r.slice = append(r.slice, t)
	return t
}

// Pop and Peek panic on an empty stack; check IsEmpty first.
func (r *Stack[T]) Pop() T {
	last := r.slice[r.Len()-1]
	r.slice = r.slice[:r.Len()-1]
	return last
}

func (r *Stack[T]) Peek() T {
	return r.slice[r.Len()-1]
}
