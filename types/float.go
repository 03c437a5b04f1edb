package types

import (
	"fmt"
	"io"
)

type Float64 float64

var _ Expr = Float64(0.0)

func (f Float64) String() string {
	return fmt.Sprintf("{Float64: %v}", float64(f))
}

func (f Float64) Print(w io.Writer) {
	fmt.Fprintf(w, "%v", float64(f))
}

func (f Float64) Type() Type {
	return TypeFloat
}
