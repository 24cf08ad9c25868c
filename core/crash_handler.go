package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// emergencyReset leaves the alternate screen, shows the cursor and resets attributes
const emergencyReset = "\x1b[?1049l\x1b[?25h\x1b[0m"

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen

	// Swapped in tests
	crashOut  io.Writer = os.Stderr
	resetOut  io.Writer = os.Stdout
	crashExit           = os.Exit
)

// RegisterScreen sets the screen finalized on crash; nil clears it
func RegisterScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if s != nil {
		s.Fini()
	} else {
		fmt.Fprint(resetOut, emergencyReset)
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
