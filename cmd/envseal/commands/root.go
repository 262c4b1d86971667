package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"envseal/internal/app"
	"envseal/internal/domain"
)

var (
	endpoint  string
	curveName string
	aeadName  string
	verbose   bool

	appWire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "envseal",
		Short: "Seal JSON payloads for the console's secure endpoints",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			w, err := app.NewWire(app.Config{
				ExchangeURL: endpoint,
				Curve:       domain.CurveName(curveName),
				AEAD:        domain.AEADName(aeadName),
				Logger:      logger,
			})
			if err != nil {
				return err
			}
			appWire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&endpoint, "endpoint", "", "key-exchange endpoint URL")
	root.PersistentFlags().StringVar(&curveName, "curve", string(domain.CurveP256), "key-agreement curve (P-256, P-384, X25519)")
	root.PersistentFlags().StringVar(&aeadName, "aead", string(domain.AEADAESGCM), "payload cipher (aes-256-gcm, chacha20-poly1305)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = root.MarkPersistentFlagRequired("endpoint")

	root.AddCommand(exchangeCmd(), fingerprintCmd(), sealCmd())
	return root.Execute()
}
