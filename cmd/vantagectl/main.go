// vantagectl is a thin example CLI over the vantage package: connect to a
// controller, dump discovered objects, or turn a load on/off.
package main

import (
	"fmt"
	"os"

	"github.com/loopj/aiovantage-sub001/cmd/vantagectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
