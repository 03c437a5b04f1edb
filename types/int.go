package types

import (
	"fmt"
	"io"
	"strconv"
)

type Int64 int64

var _ Expr = Int64(0)

func (i Int64) String() string {
	return fmt.Sprintf("{Int64: %d}", int64(i))
}

func (i Int64) Print(w io.Writer) {
	fmt.Fprintf(w, "%d", int64(i))
}

func (i Int64) Type() Type {
	return TypeInt
}

type Int64Maker struct{}

func (Int64Maker) ParseInt(token string) (Int64, bool) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return Int64(n), true
}
