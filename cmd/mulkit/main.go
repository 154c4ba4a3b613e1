// Command mulkit reads, summarizes and rewrites MegaMek unit lists.
package main

import (
	"os"
)

func main() {
	cmd, closeApp := newRootCmd()
	err := cmd.Execute()
	closeApp()
	if err != nil {
		os.Exit(1)
	}
}
