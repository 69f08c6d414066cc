// Command ballpuzzle is the thin run driver entrypoint. It takes a
// container path and a piece library path, runs package driver to
// completion, and prints a one-line summary to stdout. Anything fancier
// (flag parsing, interactive control) belongs to the front end driving
// this process, not here.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ABakker30/ballpuzzle3/container"
	"github.com/ABakker30/ballpuzzle3/driver"
	"github.com/ABakker30/ballpuzzle3/piece"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: ballpuzzle <container.json> <pieces.json>")
		return 2
	}
	containerPath, piecesPath := args[0], args[1]

	containerData, err := os.ReadFile(containerPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ballpuzzle:", err)
		return 1
	}
	cont, err := container.Load(containerData)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ballpuzzle:", err)
		return 1
	}

	pieceData, err := os.ReadFile(piecesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ballpuzzle:", err)
		return 1
	}
	lib, err := piece.Load(pieceData)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ballpuzzle:", err)
		return 1
	}

	name := strings.TrimSuffix(filepath.Base(containerPath), filepath.Ext(containerPath))
	d, err := driver.New(name, containerPath, cont.Cells, cont.R, lib, driver.DefaultOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "ballpuzzle:", err)
		return 1
	}

	summary := d.Run()
	fmt.Printf("status=%s solutions=%d attempts=%d\n", summary.Status, summary.Solutions, summary.Attempts)
	return 0
}
