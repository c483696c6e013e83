package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"starchain/block"
	"starchain/chain"
	"starchain/config"
	"starchain/exception"
	"starchain/jsonx"
	"starchain/logx"
	"starchain/monitoring"
	"starchain/registry"
	"starchain/signing"
)

var (
	genesisConfigPath string
	iniConfigPath     string
	serveMetrics      bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full issue-sign-submit-validate flow over an in-process chain",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&genesisConfigPath, "genesis", "config/genesis.yml", "Path to the genesis YAML config")
	demoCmd.Flags().StringVar(&iniConfigPath, "config", "config/config.ini", "Path to the runtime INI config")
	demoCmd.Flags().BoolVar(&serveMetrics, "metrics", false, "Serve prometheus metrics while the demo runs")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	monitoring.InitMetrics()

	genesisCfg, err := config.LoadGenesisConfig(genesisConfigPath)
	if err != nil {
		return err
	}
	challengeCfg, err := config.LoadChallengeConfig(iniConfigPath)
	if err != nil {
		return err
	}

	if serveMetrics {
		metricsCfg, err := config.LoadMetricsConfig(iniConfigPath)
		if err != nil {
			return err
		}
		mux := http.NewServeMux()
		monitoring.RegisterMetrics(mux)
		exception.SafeGo("metrics-listener", func() {
			if err := http.ListenAndServe(metricsCfg.ListenAddr, mux); err != nil {
				logx.Error("CMD", "Metrics listener stopped: ", err)
			}
		})
	}

	c, err := chain.New([]byte(genesisCfg.GenesisPayload))
	if err != nil {
		return err
	}
	reg := registry.New(c, signing.Ed25519Verifier{}, challengeCfg.WindowMinutes)

	signer, err := signing.GenerateSigner()
	if err != nil {
		return err
	}
	identity := signer.Identity()
	fmt.Printf("identity: %s\n", identity)

	stars := []block.Star{
		{RA: "16h 29m 1.0s", Dec: "-26d 29m 24.9s", Story: "Antares, heart of the scorpion"},
		{RA: "5h 55m 10.3s", Dec: "+7d 24m 25.4s", Story: "Betelgeuse, shoulder of Orion"},
	}
	for _, star := range stars {
		challenge := reg.IssueChallenge(identity)
		signature := signer.Sign([]byte(challenge))
		sealed, err := reg.SubmitStar(identity, challenge, signature, star)
		if err != nil {
			return err
		}
		fmt.Printf("registered star in block %s at position %d\n", sealed.HashString(), sealed.Position)
	}

	owned := c.GetStarsByOwner(identity)
	rendered, err := jsonx.MarshalIndent(owned, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("stars owned by %s:\n%s\n", identity, rendered)

	violations := c.Validate()
	fmt.Printf("chain height %d, violations %d\n", c.Height(), len(violations))
	return nil
}
