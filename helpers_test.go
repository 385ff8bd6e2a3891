package asyncs_test

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/b97tsk/asyncs"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

const (
	waitFor = 5 * time.Second
	tick    = time.Millisecond
)

type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureLogs routes every diagnostic into the returned buffer until the
// test ends.
func captureLogs(t *testing.T) *logBuffer {
	t.Helper()

	var b logBuffer

	prev := asyncs.Logger()
	asyncs.SetLogger(stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(&b), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(logiface.LevelTrace),
	).Logger())
	t.Cleanup(func() { asyncs.SetLogger(prev) })

	return &b
}
