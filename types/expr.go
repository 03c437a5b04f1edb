package types

import (
	"fmt"
	"io"
)

type Expr interface {
	fmt.Stringer
	// Write yourself into writer
	Print(io.Writer)
	Type() Type
}
