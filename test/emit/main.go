package main

import (
	"github.com/spf13/cobra"

	"github.com/pombredanne/jsmime/test/emit/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
