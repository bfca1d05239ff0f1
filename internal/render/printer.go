package render

import (
	"fmt"
	"io"
)

// printer remembers the first write error so callers can check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(line string) {
	p.printf("%s\n", line)
}
