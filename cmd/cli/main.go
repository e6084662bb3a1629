// camcheck - Camera Log Validator
//
// camcheck reads a camera-state JSONL log and checks every entry against the
// orbit-camera model, reporting each invariant that the log violates.
package main

import (
	"os"

	"github.com/ccollicutt/camcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
