package main

import (
	"fmt"
	"os"

	"github.com/Steven-Machin/financial-analyzer/cmd/analyze"
	"github.com/Steven-Machin/financial-analyzer/cmd/categorize"
	"github.com/Steven-Machin/financial-analyzer/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
