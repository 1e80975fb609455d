package abiguard

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger installs the logger Guard uses to report trapped panics. The
// default discards everything; passing nil restores it. Safe to call
// concurrently with exported calls.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger.Store(l)
}

func logger() *zap.Logger {
	return pkgLogger.Load()
}
