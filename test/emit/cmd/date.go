package cmd

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
)

var dateCmd = &cobra.Command{
	Use:   "date when",
	Short: "Emit an RFC 5322 date-time header body",
	Long: `Parses the argument as a date in nearly any format and emits it
as an RFC 5322 date-time.`,
	Args: cobra.MinimumNArgs(1),
	RunE: RunDate,
}

func init() {
	rootCmd.AddCommand(dateCmd)
}

func RunDate(cmd *cobra.Command, args []string) error {
	t, err := dateparse.ParseAny(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}

	e := newEmitter()
	if err := e.AddDate(t); err != nil {
		return err
	}

	fmt.Println(e.String())
	return nil
}
