// gocube-engine - animated Rubik's cube engine for the terminal.
package main

import (
	"github.com/SeamusWaldron/gocube_engine/internal/cli"
)

func main() {
	cli.Execute()
}
