package main

import (
	"os"

	"github.com/tabhaider/todo-webapp-api/internal/todocli"
)

func main() {
	repl := todocli.NewREPL(os.Stdin, os.Stdout)
	repl.Run()
}
