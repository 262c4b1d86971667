package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"envseal/internal/crypto"
)

// fingerprintCmd prints short fingerprints of both channel keys so the
// backend key can be compared out of band.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the backend public key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appWire.Channel.Init(cmd.Context()); err != nil {
				return err
			}
			sess, _ := appWire.Channel.Session()
			localDER, err := appWire.Suite.MarshalPublicKey(sess.LocalPublic)
			if err != nil {
				return err
			}
			fmt.Printf("Backend: %s\n", crypto.Fingerprint(sess.Exchange.BackendPublicKey))
			fmt.Printf("Local:   %s\n", crypto.Fingerprint(localDER))
			return nil
		},
	}
}
