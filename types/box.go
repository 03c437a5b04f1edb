package types

import (
	"fmt"
	"io"
)

// Box exclusively owns a heap copy of its value.
type Box[T any] struct {
	p *T
}

func NewBox[T any](v T) Box[T] {
	p := new(T)
	*p = v
	return Box[T]{p: p}
}

func (b Box[T]) Get() T {
	return *b.p
}

func (b Box[T]) Print(w io.Writer) {
	io.WriteString(w, "Box(")
	printValue(w, *b.p)
	io.WriteString(w, ")")
}

func (b Box[T]) String() string {
	return fmt.Sprintf("{Box: %v}", *b.p)
}

// Ref observes a value it does not own. The referenced variable must
// outlive the Ref.
type Ref[T any] struct {
	p *T
}

func Borrow[T any](p *T) Ref[T] {
	if p == nil {
		panic(fmt.Errorf("Cannot borrow nil pointer"))
	}
	return Ref[T]{p: p}
}

func (r Ref[T]) Get() T {
	return *r.p
}

func (r Ref[T]) Print(w io.Writer) {
	io.WriteString(w, "&")
	printValue(w, *r.p)
}

func (r Ref[T]) String() string {
	return fmt.Sprintf("{Ref: %v}", *r.p)
}

func printValue(w io.Writer, v any) {
	if p, ok := v.(interface{ Print(io.Writer) }); ok {
		p.Print(w)
		return
	}
	fmt.Fprintf(w, "%v", v)
}
