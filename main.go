package main

import (
	"fmt"
	"tilepuzzle/src/ui"
)

func main() {
	if err := ui.RunTilePuzzle(); err != nil {
		fmt.Printf("error tilepuzzle: %v\n", err)
	}
}
