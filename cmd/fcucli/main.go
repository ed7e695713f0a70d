package main

import (
	"github.com/robotalks/fcu.go/pkg/env"
	"github.com/robotalks/fcu.go/pkg/ground/shell"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	shell.Main()
}
