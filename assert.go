package safeint

import (
	"fmt"
	"log/slog"
	"os"
)

// ViolationHandler receives contract-violation diagnostics: reading an
// unchecked or poisoned value, or calling Checked on a poisoned one. It is
// the sole channel through which the core reports misuse; arithmetic
// faults themselves are communicated through the poisoned flag, never
// through this hook.
type ViolationHandler func(msg string, loc Loc)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

var currentHandler ViolationHandler

// SetLogger replaces the logger used by the default violation handler.
// Passing nil restores the default text handler on stderr. It mutates
// process-global state without synchronization: call it during setup,
// before any goroutine can trigger a violation.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}
	logger = l
}

// SetViolationHandler replaces the fatal-diagnostic hook and returns the
// previous handler. Passing nil restores the default handler, which logs
// the violation and panics. Only debug builds ever invoke the hook. Like
// SetLogger it mutates process-global state without synchronization and
// is not safe to call concurrently with reads that may violate.
func SetViolationHandler(h ViolationHandler) ViolationHandler {
	prev := currentHandler
	currentHandler = h
	return prev
}

func defaultHandler(msg string, loc Loc) {
	logger.Error("contract violation", "msg", msg, "file", loc.File, "line", loc.Line)
	panic(fmt.Sprintf("safeint: %s\n  --> %s", msg, loc))
}
