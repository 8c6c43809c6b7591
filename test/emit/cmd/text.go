package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text words...",
	Short: "Emit folded unstructured text, such as a Subject body",
	Args:  cobra.MinimumNArgs(1),
	RunE:  RunText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func RunText(cmd *cobra.Command, args []string) error {
	e := newEmitter()
	if err := e.AddUnstructured(strings.Join(args, " ")); err != nil {
		return err
	}

	fmt.Println(e.String())
	return nil
}
