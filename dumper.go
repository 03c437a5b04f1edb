package main

import (
	"fmt"
	"io"
	"log"

	"github.com/avoronkov/boxlist/types"
)

// Dumper writes lists to its output, one per line.
type Dumper struct {
	w      io.Writer
	prefix string
	stat   bool
	count  int
}

func NewDumper(w io.Writer, prefix string) *Dumper {
	return &Dumper{w: w, prefix: prefix}
}

func (d *Dumper) UseStat(stat bool) {
	d.stat = stat
}

func (d *Dumper) Dump(l types.List) error {
	d.count++
	log.Printf("[dump] %v #%d: %d elements", l.Type(), d.count, types.Len(l))
	if _, err := io.WriteString(d.w, d.prefix+types.Format(l)+"\n"); err != nil {
		return err
	}
	if d.stat {
		_, err := fmt.Fprintf(d.w, "length: %d, node size: %d bytes\n", types.Len(l), types.NodeSize())
		return err
	}
	return nil
}

// DumpAll dumps every list the parser produces.
func (d *Dumper) DumpAll(p *Parser) error {
	for {
		l, err := p.NextList()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("list #%d: %w", d.count+1, err)
		}
		if err := d.Dump(l); err != nil {
			return err
		}
	}
}
