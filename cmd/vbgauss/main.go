package main

import "github.com/ibme-qubic/vb-tutorial/internal/cli"

func main() {
	cli.Execute()
}
