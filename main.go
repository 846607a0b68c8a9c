package main

import (
	"github.com/macrohard/datalens/cmd"
)

func main() {
	cmd.Execute()
}
