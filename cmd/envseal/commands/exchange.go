package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exchangeCmd negotiates a session against the configured endpoint and
// prints the result, so deployments can be smoke-tested without sealing
// anything.
func exchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange",
		Short: "Negotiate a session with the key-exchange endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appWire.Channel.Init(cmd.Context()); err != nil {
				return fmt.Errorf("negotiating session: %w", err)
			}
			sess, _ := appWire.Channel.Session()
			fmt.Printf("Session established. ID=%s\n", sess.Exchange.SessionID)
			if sess.Exchange.ExpiresIn > 0 {
				fmt.Printf("Server expiry hint: %ds (not enforced client-side)\n", sess.Exchange.ExpiresIn)
			}
			return nil
		},
	}
}
