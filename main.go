/*
This is an example of application that will use the
engine package to draw the testbed scenario
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
