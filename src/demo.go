package src

// Lib demo drives the composite adapters through representative
// sequences. It is a demonstration front end over the public API, not
// part of the container engine.

import (
	"simple-structs/utils"

	"github.com/ILkUVayne/utlis-go/v2/str"
	"github.com/ILkUVayne/utlis-go/v2/ulog"
)

var demoElemSize = int(utils.SizeofIn64())

// parseDemoValues converts trailing command-line arguments into int64
// elements, falling back to a default sequence when none are given.
func parseDemoValues(args []string) []int64 {
	if len(args) == 0 {
		return []int64{1, 2, 3, 4, 5}
	}
	values := make([]int64, 0, len(args))
	for _, a := range args {
		var v int64
		if str.String2Int64(a, &v) != nil {
			ulog.ErrorP("demo err: not an integer: ", a)
			continue
		}
		values = append(values, v)
	}
	return values
}

func demoStack(s Stack, values []int64) {
	for _, v := range values {
		if err := s.Push(PutInt64(v)); err != nil {
			ulog.ErrorP("demo stack push err: ", err)
			return
		}
	}
	out := make([]byte, demoElemSize)
	for !s.Empty() {
		if err := s.Pop(out); err != nil {
			ulog.ErrorP("demo stack pop err: ", err)
			return
		}
		ulog.InfoF("stack pop: %d", Int64At(out))
	}
}

func demoQueue(q Queue, values []int64) {
	for _, v := range values {
		if err := q.Enqueue(PutInt64(v)); err != nil {
			ulog.ErrorP("demo queue enqueue err: ", err)
			return
		}
	}
	out := make([]byte, demoElemSize)
	for !q.Empty() {
		if err := q.Dequeue(out); err != nil {
			ulog.ErrorP("demo queue dequeue err: ", err)
			return
		}
		ulog.InfoF("queue dequeue: %d", Int64At(out))
	}
}

func demoDeque(values []int64) {
	d := DequeCreate(demoElemSize)
	defer d.Destroy()
	// alternate ends, then drain from the front
	for i, v := range values {
		var err error
		if i%2 == 0 {
			err = d.PushBack(PutInt64(v))
		} else {
			err = d.PushFront(PutInt64(v))
		}
		if err != nil {
			ulog.ErrorP("demo deque push err: ", err)
			return
		}
	}
	out := make([]byte, demoElemSize)
	for !d.Empty() {
		if err := d.PopFront(out); err != nil {
			ulog.ErrorP("demo deque pop err: ", err)
			return
		}
		ulog.InfoF("deque pop front: %d", Int64At(out))
	}
}

// DemoStart runs every adapter variant over the given arguments.
func DemoStart(args []string) {
	values := parseDemoValues(args)

	ulog.Info("array-backed stack:")
	as := StackArrayCreate(demoElemSize)
	demoStack(as, values)
	as.Destroy()

	ulog.Info("list-backed stack:")
	ls := StackListCreate(demoElemSize)
	demoStack(ls, values)
	ls.Destroy()

	ulog.Info("circular-buffer queue:")
	aq := QueueArrayCreate(demoElemSize)
	demoQueue(aq, values)
	aq.Destroy()

	ulog.Info("list-backed queue:")
	lq := QueueListCreate(demoElemSize)
	demoQueue(lq, values)
	lq.Destroy()

	ulog.Info("deque:")
	demoDeque(values)
}
