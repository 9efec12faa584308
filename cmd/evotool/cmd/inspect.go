package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coinevo/coinevo-core/common"
	"github.com/coinevo/coinevo-core/consensus"
	"github.com/coinevo/coinevo-core/core"
)

// inspectCmd represents the inspect command.
// Example:
//		evotool inspect --network=mainnet --file=checkpoints.json
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the checkpoints loaded for a network",
	Long:  `List the checkpoints loaded for a network.`,
	Run:   doInspectCmd,
}

func doInspectCmd(cmd *cobra.Command, args []string) {
	store, err := loadStore()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Failed to load checkpoints")
	}

	points := store.Points()
	for _, pt := range points {
		fmt.Printf("%10d  %v\n", pt.Height, pt.Hash.Hex())
	}
	fmt.Printf("%d checkpoint(s)\n", len(points))
}

func loadStore() (*core.CheckpointStore, error) {
	kind, err := core.ParseNetworkKind(viper.GetString(common.CfgCheckpointNetwork))
	if err != nil {
		return nil, err
	}

	loader := consensus.NewCheckpointLoader(core.NewCheckpointStore(), nil)
	if res := loader.LoadDefaults(kind); res.IsError() {
		return nil, errors.New(res.Message)
	}
	res := loader.LoadAll(viper.GetString(common.CfgCheckpointFilePath), kind,
		viper.GetBool(common.CfgCheckpointDNSEnabled))
	if res.IsError() {
		return nil, errors.New(res.Message)
	}
	return loader.Store(), nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
