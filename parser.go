package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/avoronkov/boxlist/types"
)

type Parser struct {
	scanner *bufio.Scanner
	tokens  []string
	ints    types.Int64Maker
}

func NewParser(r io.Reader) *Parser {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	return &Parser{
		scanner: scanner,
	}
}

// NextList reads the next list literal: "(1 2 3)" or "'(1 2 3)".
// Returns io.EOF when input is over.
func (p *Parser) NextList() (types.List, error) {
	token, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	if token != "(" && token != "'(" {
		return nil, fmt.Errorf("Expected list literal, found %q", token)
	}
	var values []int64
	for {
		token, err := p.nextToken()
		if err == io.EOF {
			return nil, fmt.Errorf("Unterminated list literal")
		}
		if err != nil {
			return nil, err
		}
		if token == ")" {
			break
		}
		if token == "(" || token == "'(" {
			return nil, fmt.Errorf("Nested lists are not supported")
		}
		n, ok := p.ints.ParseInt(token)
		if !ok {
			return nil, fmt.Errorf("Expected integer, found %q", token)
		}
		values = append(values, int64(n))
	}
	return types.MakeList(values...), nil
}

func (p *Parser) nextToken() (string, error) {
	if len(p.tokens) == 0 {
		if err := p.prepareTokens(); err != nil {
			return "", err
		}
	}
	token := p.tokens[0]
	p.tokens = p.tokens[1:]
	return token, nil
}

func (p *Parser) prepareTokens() error {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	line := strings.TrimSpace(p.scanner.Text())
	if line == "" || line[0] == '#' {
		return p.prepareTokens()
	}
	fields := strings.Fields(line)
	var tokens []string
	for _, field := range fields {
		tokens = append(tokens, p.splitField(field)...)
	}
	if len(tokens) == 0 {
		return p.prepareTokens()
	}
	p.tokens = tokens
	return nil
}

// '(1' -> '(', '1'
// '1)' -> '1', ')'
// '(1))' -> '(', '1', ')', ')'
// `'(1` -> `'(`, `1`
func (p *Parser) splitField(field string) (tokens []string) {
	for {
		if strings.HasPrefix(field, "(") {
			tokens = append(tokens, "(")
			field = field[1:]
		} else if strings.HasPrefix(field, "'(") {
			tokens = append(tokens, "'(")
			field = field[2:]
		} else {
			break
		}
	}
	closing := 0
	for strings.HasSuffix(field, ")") {
		field = field[:len(field)-1]
		closing++
	}
	if len(field) > 0 {
		tokens = append(tokens, field)
	}
	for ; closing > 0; closing-- {
		tokens = append(tokens, ")")
	}
	return
}
