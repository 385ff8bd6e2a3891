package asyncs

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

var errGoexit = errors.New("runtime.Goexit called")

type panicstack []panicitem

// Try calls f and records a panic, or a call to runtime.Goexit, instead of
// letting it propagate.
// A Goexit cannot be stopped; it is recorded and then continues to unwind.
func (ps *panicstack) Try(f func()) (ok bool) {
	defer func() {
		if !ok {
			v := recover()
			if v == nil {
				v = errGoexit
			}
			ps.push(v, debug.Stack())
		}
	}()
	f()
	return true
}

func (ps *panicstack) push(v any, stack []byte) {
	*ps = append(*ps, panicitem{v, stack})
}

// Err returns nil if nothing was recorded. The error it returns unwraps to
// every recorded panic value that is an error.
func (ps panicstack) Err() error {
	if len(ps) == 0 {
		return nil
	}
	pv := &panicvalue{items: ps}
	for _, p := range ps {
		if err, ok := p.value.(error); ok {
			pv.errs = append(pv.errs, err)
		}
	}
	return pv
}

type panicitem struct {
	value any
	stack []byte
}

type panicvalue struct {
	items []panicitem
	errs  []error
}

func (pv *panicvalue) Error() string {
	var b strings.Builder
	b.WriteString("task terminated abnormally:")
	for i, p := range pv.items {
		fmt.Fprintf(&b, "\n(%d/%d) panic: %v", i+1, len(pv.items), p.value)
		if p.stack != nil {
			b.WriteString("\n\n")
			b.Write(p.stack)
		}
	}
	return b.String()
}

func (pv *panicvalue) Unwrap() []error { return pv.errs }
