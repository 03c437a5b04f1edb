package main

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/avoronkov/boxlist/types"
)

func TestNextToken(t *testing.T) {
	testdata := []struct {
		input  string
		result []string
	}{
		{`1`, []string{"1"}},
		{`( 1 )`, []string{"(", "1", ")"}},
		{`(1 )`, []string{"(", "1", ")"}},
		{`( 1)`, []string{"(", "1", ")"}},
		{`(1)`, []string{"(", "1", ")"}},
		{`'(1 2 3)`, []string{"'(", "1", "2", "3", ")"}},
		{`((1))`, []string{"(", "(", "1", ")", ")"}},
		{"(1)\n\n# comment\n(2)", []string{"(", "1", ")", "(", "2", ")"}},
		{"()", []string{"(", ")"}},
	}

	for _, test := range testdata {
		t.Run(test.input, func(t *testing.T) {
			p := NewParser(strings.NewReader(test.input))
			var tokens []string
			for {
				tok, err := p.nextToken()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("nextToken() failed; %v", err)
				}
				tokens = append(tokens, tok)
			}
			if !reflect.DeepEqual(tokens, test.result) {
				t.Errorf("Tokens are parsed incorrectly:\nexpected %v,\n  actual %v", test.result, tokens)
			}
		})
	}
}

func TestNextList(t *testing.T) {
	testdata := []struct {
		input  string
		result []string
	}{
		{`(1 2 3)`, []string{"Cons(1, Cons(2, Cons(3, Nil)))"}},
		{`'(-1)`, []string{"Cons(-1, Nil)"}},
		{`()`, []string{"Nil"}},
		{"(1\n 2)\n# skip\n'(3)", []string{"Cons(1, Cons(2, Nil))", "Cons(3, Nil)"}},
		{"", nil},
	}
	for _, test := range testdata {
		t.Run(test.input, func(t *testing.T) {
			p := NewParser(strings.NewReader(test.input))
			var lists []string
			for {
				l, err := p.NextList()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("NextList() failed: %v", err)
				}
				lists = append(lists, types.Format(l))
			}
			if !reflect.DeepEqual(lists, test.result) {
				t.Errorf("Incorrect NextList() result:\nexpected %v,\n  actual %v", test.result, lists)
			}
		})
	}
}

func TestNextListErrors(t *testing.T) {
	testdata := []string{
		`1 2 3`,
		`(1 two)`,
		`(1 (2))`,
		`(1 2`,
		`)`,
	}
	for _, input := range testdata {
		t.Run(input, func(t *testing.T) {
			p := NewParser(strings.NewReader(input))
			if l, err := p.NextList(); err == nil || err == io.EOF {
				t.Errorf("NextList() expected to fail, got (%v, %v)", l, err)
			}
		})
	}
}

func TestNextListLongLine(t *testing.T) {
	const n = 20000
	b := &strings.Builder{}
	b.WriteString("(")
	for i := 0; i < n; i++ {
		fmt.Fprintf(b, " %d", 12345)
	}
	b.WriteString(")")
	if b.Len() <= 64*1024 {
		t.Fatalf("Input is too short: %v bytes", b.Len())
	}

	p := NewParser(strings.NewReader(b.String()))
	l, err := p.NextList()
	if err != nil {
		t.Fatalf("NextList() failed: %v", err)
	}
	if act := types.Len(l); act != n {
		t.Errorf("Incorrect list length: expected %v, actual %v", n, act)
	}
}
