package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cenkalti/backoff/v5"
	"github.com/spf13/cobra"

	"envseal/internal/domain"
	"envseal/internal/exchange"
)

// sealCmd encrypts a JSON payload (from a file argument or stdin) and
// prints the envelope to stdout. Transient exchange failures are retried
// with exponential backoff; everything else fails immediately, matching
// the channel's error contract.
func sealCmd() *cobra.Command {
	var maxTries uint

	cmd := &cobra.Command{
		Use:   "seal [payload.json]",
		Short: "Encrypt a JSON payload into an envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readPayload(args)
			if err != nil {
				return err
			}
			var payload any
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("payload is not valid JSON: %w", err)
			}

			op := func() (domain.Envelope, error) {
				env, err := appWire.Channel.EncryptPayload(cmd.Context(), payload)
				if err != nil {
					if exchange.IsRetryable(err) {
						return domain.Envelope{}, err
					}
					return domain.Envelope{}, backoff.Permanent(err)
				}
				return env, nil
			}
			env, err := backoff.Retry(
				cmd.Context(),
				op,
				backoff.WithBackOff(backoff.NewExponentialBackOff()),
				backoff.WithMaxTries(maxTries),
			)
			if err != nil {
				return fmt.Errorf("sealing payload: %w", err)
			}

			out, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().UintVar(&maxTries, "max-tries", 3, "attempts for transient exchange failures")
	return cmd
}

func readPayload(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
