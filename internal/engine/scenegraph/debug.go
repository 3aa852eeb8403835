package scenegraph

import "fmt"

// debug enables ownership assertions. Off by default; tests and debug builds
// turn it on with SetDebug. It is a process-wide development switch; avatar
// state lives in each Arena and node tree.
var debug bool

// SetDebug toggles assertions: tree operations on disposed nodes, double
// geometry release and attaching into an occupied slot all panic.
func SetDebug(enabled bool) {
	debug = enabled
}

// Debug reports whether assertions are enabled.
func Debug() bool {
	return debug
}

func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scenegraph debug: %s on disposed node %q (%p)", op, n.Name, n))
	}
}
