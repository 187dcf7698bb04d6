// Rooter runs a fixed interpreter with the privileges of its owner.
//
// Rooter must be installed owned by uid 0 with the setuid bit set:
//
//	install -o root -g root -m 4755 rooter /usr/bin/rooter
//
// The interpreter pathname, the argv[0] token handed to it, the path handling mode
// and the working directory of fixed mode are set by the linker through package
// build, and none of them can be influenced by the caller.
package main

// minimise imports to avoid inadvertently calling init or global variable functions

import (
	"log"
	"os"
	"runtime"

	"git.ophivana.moe/security/rooter/internal/launch"
)

func main() {
	runtime.LockOSThread()

	log.SetFlags(0)
	log.SetPrefix("rooter: ")
	log.SetOutput(os.Stderr)

	launch.Main(os.Args)
}
