// Package engine executes Action Replay codes against a target memory.
package engine

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/retroenv/archeat/internal/code"
	"github.com/retroenv/archeat/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// AlertFunc reports unrecoverable code errors to the user. It is called with
// the store lock held and must not call back into the engine.
type AlertFunc func(format string, args ...any)

// Options configure the engine.
type Options struct {
	// EnableCheats gates all store mutations and passes. When false the
	// engine ignores codes entirely.
	EnableCheats bool
}

// Engine holds the active code set and runs one interpreter pass per tick.
// A single lock guards the active list, the self log buffer and the
// reference to the code currently being run, so a pass is atomic with
// respect to store mutations from other goroutines.
type Engine struct {
	opts   Options
	mem    memory.Accessor
	logger *log.Logger
	alert  AlertFunc

	selfLogging atomic.Bool

	mu            sync.Mutex
	active        []code.Code
	selfLog       []string
	logSuppressed bool
	current       *code.Code // code currently being run, for diagnostic attribution
}

// New creates a new engine writing to the passed memory accessor. A nil
// alert func reports through the logger.
func New(opts Options, mem memory.Accessor, logger *log.Logger, alert AlertFunc) *Engine {
	e := &Engine{
		opts:   opts,
		mem:    mem,
		logger: logger,
	}
	if alert == nil {
		alert = func(format string, args ...any) {
			logger.Error(fmt.Sprintf(format, args...))
		}
	}
	e.alert = alert
	return e
}

// ApplyCodes replaces the active set with the active codes of the passed
// list, discarding the previous set.
func (e *Engine) ApplyCodes(codes []code.Code) {
	if !e.opts.EnableCheats {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.logSuppressed = false
	e.active = make([]code.Code, 0, len(codes))
	for _, c := range codes {
		if c.Active {
			e.active = append(e.active, c)
		}
	}
}

// AddCode appends a single active code to the active set.
func (e *Engine) AddCode(c code.Code) {
	if !e.opts.EnableCheats || !c.Active {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.logSuppressed = false
	e.active = append(e.active, c)
}

// RunAllActive runs one pass over the active set. Codes whose run fails are
// reported and evicted permanently. Verbose diagnostics are suppressed after
// the pass until the next store mutation.
func (e *Engine) RunAllActive() {
	if !e.opts.EnableCheats {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.active[:0]
	for i := range e.active {
		c := e.active[i]
		if err := e.runCodeLocked(&c); err != nil {
			e.alert("Action Replay code %q failed: %v", c.Name, err)
			e.logger.Warn("Evicting failed code",
				log.String("code", c.Name), log.Err(err))
			continue
		}
		kept = append(kept, c)
	}
	e.active = kept
	e.logSuppressed = true
}

// ActiveCodes returns a snapshot of the active set.
func (e *Engine) ActiveCodes() []code.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.active)
}

// EnableSelfLogging turns the internal diagnostic buffer on or off.
func (e *Engine) EnableSelfLogging(enable bool) {
	e.selfLogging.Store(enable)
}

// SelfLogging reports whether the internal diagnostic buffer is enabled.
func (e *Engine) SelfLogging() bool {
	return e.selfLogging.Load()
}

// SelfLog returns a snapshot of the internal diagnostic buffer.
func (e *Engine) SelfLog() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.selfLog)
}

// ClearSelfLog empties the internal diagnostic buffer.
func (e *Engine) ClearSelfLog() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selfLog = nil
}

// logf emits a verbose interpreter diagnostic. Diagnostics are suppressed
// after each pass until the next store mutation re-enables them.
func (e *Engine) logf(format string, args ...any) {
	if e.logSuppressed {
		return
	}
	text := fmt.Sprintf(format, args...)
	if e.current != nil {
		e.logger.Debug(text, log.String("code", e.current.Name))
	} else {
		e.logger.Debug(text)
	}
	if e.selfLogging.Load() {
		e.selfLog = append(e.selfLog, text)
	}
}
