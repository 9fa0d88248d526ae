package ui

import (
	"fmt"
	"io"
	"sync"
)

// printer serializes writes from the prompt and from table updates.
type printer struct {
	out io.Writer
	mu  *sync.Mutex
}

func (p printer) Printfln(format string, args ...interface{}) {
	p.Println(fmt.Sprintf(format, args...))
}

func (p printer) Println(args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.out, args...)
}

// Print writes text as is, without a trailing line break.
func (p printer) Print(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprint(p.out, text)
}
