package asyncs

import (
	"os"
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

var globalLogger struct {
	sync.RWMutex
	logger *logiface.Logger[logiface.Event]
	set    bool
}

var defaultLogger = sync.OnceValue(func() *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(os.Stderr)),
		stumpy.L.WithLevel(logiface.LevelError),
	).Logger()
})

// SetLogger replaces the logger used to report diagnostics, such as tasks
// that terminated abnormally.
// A nil logger disables logging.
//
// By default, diagnostics at error level and above are written to
// [os.Stderr] as JSON.
func SetLogger(l *logiface.Logger[logiface.Event]) {
	globalLogger.Lock()
	globalLogger.logger = l
	globalLogger.set = true
	globalLogger.Unlock()
}

// Logger returns the logger set by [SetLogger], or the default one.
// The result may be nil, which is safe to log to.
func Logger() *logiface.Logger[logiface.Event] {
	globalLogger.RLock()
	l, set := globalLogger.logger, globalLogger.set
	globalLogger.RUnlock()
	if set {
		return l
	}
	return defaultLogger()
}
