package main

import (
	"os"

	"listselect/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
