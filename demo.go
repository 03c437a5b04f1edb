package main

import (
	"io"
	"log"
	"strings"

	"github.com/avoronkov/boxlist/types"
)

// demoList builds Cons(1, Cons(2, Cons(3, Nil))). On the way it traces a
// scalar held directly, a boxed copy of it and a borrowed reference to it.
func demoList() types.List {
	x := types.Float64(0.23456)
	y := types.NewBox(x)
	z := types.Borrow(&x)
	log.Printf("[demo] x = %v, y = %v, z = %v", sprint(x), sprint(y), sprint(z))

	return types.MakeCons(1, types.MakeCons(2, types.MakeCons(3, types.MakeNil())))
}

func sprint(p interface{ Print(io.Writer) }) string {
	b := &strings.Builder{}
	p.Print(b)
	return b.String()
}
