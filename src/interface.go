package src

// ----------------------------- base interface -------------------------

type emptier interface {
	Empty() bool
}

type length interface {
	Len() int
}

type capacity interface {
	Cap() int
}

// ----------------------------- adapter interface ----------------------

// Stack is the shared contract of the array- and list-backed stacks.
// Callers pick the backing at construction time and can switch without
// changing call sites.
type Stack interface {
	Push(el []byte) error
	Pop(out []byte) error
	Peek(out []byte) error
	Len() int
	Empty() bool
	Destroy()
}

// Queue is the shared contract of the array- and list-backed queues.
type Queue interface {
	Enqueue(el []byte) error
	Dequeue(out []byte) error
	Peek(out []byte) error
	Len() int
	Empty() bool
	Destroy()
}
