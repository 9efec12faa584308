package main

import (
	"github.com/coinevo/coinevo-core/cmd/evotool/cmd"
)

func main() {
	cmd.Execute()
}
