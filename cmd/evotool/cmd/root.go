package cmd

import (
	"fmt"
	"os"
	"path"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coinevo/coinevo-core/common"
	"github.com/coinevo/coinevo-core/common/util"
)

var cfgPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "evotool",
	Short: "Coinevo checkpoint tool",
	Long:  `Coinevo checkpoint tool.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", getDefaultConfigPath(), fmt.Sprintf("config path (default is %s)", getDefaultConfigPath()))
	rootCmd.PersistentFlags().String("network", "mainnet", "Network kind (mainnet, testnet, stagenet, fakechain)")
	rootCmd.PersistentFlags().String("file", "", "Path of the checkpoint override file")
	viper.BindPFlag(common.CfgCheckpointNetwork, rootCmd.PersistentFlags().Lookup("network"))
	viper.BindPFlag(common.CfgCheckpointFilePath, rootCmd.PersistentFlags().Lookup("file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.AddConfigPath(cfgPath)

	// Search config (without extension).
	viper.SetConfigName("config")

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	util.InitLog()
}

func getDefaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return path.Join(home, ".coinevo")
}
