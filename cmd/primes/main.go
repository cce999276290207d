package main

import (
	"fmt"
	"os"

	"github.com/KumKeeHyun/eratosthenes/cmd/primes/commands"
)

func main() {
	if err := commands.Execute(commands.NewRootCmd(), os.Args[1:]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
