package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	crashReset func()
)

// SetCrashReset registers the terminal restore step run before a panic is
// reported. Without it a crash leaves the tty in fullscreen raw mode and
// the stack trace is unreadable.
func SetCrashReset(fn func()) {
	crashMu.Lock()
	crashReset = fn
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic with its stack trace
// and exits. Call it with recover() from deferred functions.
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashMu.Lock()
	reset := crashReset
	crashMu.Unlock()
	if reset != nil {
		reset()
	}
	fmt.Fprintf(os.Stderr, "crash: %v\n", r)
	fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery, so a crash off the
// main loop still cleans up the terminal.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
