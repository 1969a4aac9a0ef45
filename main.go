package main

import (
	"fmt"
	"os"

	"concerto/repl"
)

func main() {
	fmt.Println("Concerto namespace REPL (Ctrl-D to exit)")
	repl.Start(os.Stdin, os.Stdout)
}
