package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/pombredanne/jsmime/emitter"
)

var addressCmd = &cobra.Command{
	Use:   "address list...",
	Short: "Emit a folded address list header body",
	Long: `Each argument is parsed as an RFC 5322 address list and the
combined result is emitted as a single folded header field body.`,
	Args: cobra.MinimumNArgs(1),
	RunE: RunAddress,
}

func init() {
	rootCmd.AddCommand(addressCmd)
}

func RunAddress(cmd *cobra.Command, args []string) error {
	var list []emitter.Address
	for _, arg := range args {
		al, err := addr.ParseEmailAddressList(arg)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", arg, err)
		}
		list = append(list, emitter.FromAddrList(al)...)
	}

	e := newEmitter()
	if err := e.AddAddresses(list); err != nil {
		return err
	}

	fmt.Println(e.String())
	return nil
}
