package main

import (
	"github.com/mitre/enacp/mock/cmd"
)

func main() {
	cmd.Execute()
}
