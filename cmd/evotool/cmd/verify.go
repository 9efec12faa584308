package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coinevo/coinevo-core/common"
)

var (
	heightFlag uint64
	hashFlag   string
)

// verifyCmd represents the verify command.
// Example:
//		evotool verify --height=25416 --hash=6bc8e5598098e3743f1a092e5da300f3ef61bed6523a793d5a79c462813bef57
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a block hash against the checkpoints",
	Long:  `Verify a block hash against the checkpoints.`,
	Run:   doVerifyCmd,
}

func doVerifyCmd(cmd *cobra.Command, args []string) {
	store, err := loadStore()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Failed to load checkpoints")
	}

	hash, err := common.HexToHash(hashFlag)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Invalid block hash")
	}

	ok, isCheckpoint := store.CheckBlock(heightFlag, hash)
	switch {
	case !isCheckpoint:
		fmt.Printf("No checkpoint at height %d\n", heightFlag)
	case ok:
		fmt.Printf("Checkpoint at height %d matches\n", heightFlag)
	default:
		fmt.Printf("Checkpoint at height %d does NOT match\n", heightFlag)
		os.Exit(1)
	}
}

func init() {
	verifyCmd.Flags().Uint64Var(&heightFlag, "height", 0, "Height of the block")
	verifyCmd.Flags().StringVar(&hashFlag, "hash", "", "Hash of the block")
	verifyCmd.MarkFlagRequired("height")
	verifyCmd.MarkFlagRequired("hash")

	rootCmd.AddCommand(verifyCmd)
}
