package types

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unsafe"
)

var ErrEmptyList = errors.New("empty list")

// List is either a *Cons node or the Nil terminator.
type List interface {
	Expr
	Head() (Int64, error)
	Tail() (List, error)
	Empty() bool
	list()
}

// Cons owns its tail through an interface value, so the node has the same
// size whatever the length of the chain behind it.
type Cons struct {
	value Int64
	rest  List
}

type Nil struct{}

var (
	_ List = (*Cons)(nil)
	_ List = Nil{}
)

func MakeCons(value int64, rest List) List {
	if rest == nil {
		rest = Nil{}
	}
	return &Cons{value: Int64(value), rest: rest}
}

func MakeNil() List {
	return Nil{}
}

// MakeList(1, 2, 3) -> Cons(1, Cons(2, Cons(3, Nil)))
func MakeList(values ...int64) List {
	res := MakeNil()
	for i := len(values) - 1; i >= 0; i-- {
		res = MakeCons(values[i], res)
	}
	return res
}

func Format(l List) string {
	b := &strings.Builder{}
	l.Print(b)
	return b.String()
}

func Values(l List) (values []int64) {
	for c, ok := l.(*Cons); ok; c, ok = c.rest.(*Cons) {
		values = append(values, int64(c.value))
	}
	return
}

func Len(l List) (n int) {
	for c, ok := l.(*Cons); ok; c, ok = c.rest.(*Cons) {
		n++
	}
	return
}

// NodeSize is the footprint of one node, successors excluded.
func NodeSize() uintptr {
	return unsafe.Sizeof(Cons{})
}

//
// Cons
//

func (c *Cons) Head() (Int64, error) {
	return c.value, nil
}

func (c *Cons) Tail() (List, error) {
	return c.rest, nil
}

func (c *Cons) Empty() bool {
	return false
}

func (c *Cons) Print(w io.Writer) {
	depth := 0
	for l, ok := c, true; ok; l, ok = l.rest.(*Cons) {
		fmt.Fprintf(w, "Cons(%d, ", int64(l.value))
		depth++
	}
	io.WriteString(w, "Nil")
	io.WriteString(w, strings.Repeat(")", depth))
}

func (c *Cons) String() string {
	return Format(c)
}

func (c *Cons) Type() Type {
	return TypeList
}

func (*Cons) list() {}

//
// Nil
//

func (Nil) Head() (Int64, error) {
	return 0, fmt.Errorf("Cannot perform Head() on Nil: %w", ErrEmptyList)
}

func (Nil) Tail() (List, error) {
	return nil, fmt.Errorf("Cannot perform Tail() on Nil: %w", ErrEmptyList)
}

func (Nil) Empty() bool {
	return true
}

func (Nil) Print(w io.Writer) {
	io.WriteString(w, "Nil")
}

func (Nil) String() string {
	return "Nil"
}

func (Nil) Type() Type {
	return TypeList
}

func (Nil) list() {}
