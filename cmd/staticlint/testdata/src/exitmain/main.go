package main

import (
	"fmt"
	"os"
)

func run() error { return nil }

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1) // want `os.Exit call is forbidden in main function: os.Exit\(1\)`
	}

	defer func() {
		os.Exit(0)
	}()

	os.Exit(2) // want `os.Exit call is forbidden in main function`
}

func helper() {
	os.Exit(3)
}
