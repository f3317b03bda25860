package main

import (
	"github.com/knownbits-dev/go-knownbits/pkg/cmd"
)

func main() {
	cmd.Execute()
}
