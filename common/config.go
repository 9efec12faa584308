package common

import (
	"github.com/spf13/viper"
)

const (
	// CfgCheckpointNetwork selects which network's hardcoded checkpoint table to load.
	CfgCheckpointNetwork = "checkpoint.network"
	// CfgCheckpointFilePath sets the location of the optional checkpoint override file.
	CfgCheckpointFilePath = "checkpoint.filePath"
	// CfgCheckpointDNSEnabled decides whether to query the DNS trust anchor for checkpoints.
	CfgCheckpointDNSEnabled = "checkpoint.dnsEnabled"

	// CfgLogLevels sets the log level.
	CfgLogLevels = "log.levels"
	// CfgLogDebug enables debug logging.
	CfgLogDebug = "log.debug"
)

// InitialConfig is the default configuration produced by the init command.
const InitialConfig = `# Coinevo configuration
checkpoint:
  network: mainnet
  dnsEnabled: false
`

func init() {
	viper.SetDefault(CfgCheckpointNetwork, "mainnet")
	viper.SetDefault(CfgCheckpointFilePath, "")
	viper.SetDefault(CfgCheckpointDNSEnabled, false)

	viper.SetDefault(CfgLogLevels, "info")
	viper.SetDefault(CfgLogDebug, false)
}

// WriteInitialConfig writes initial config file to file system.
func WriteInitialConfig(filePath string) error {
	return WriteFileAtomic(filePath, []byte(InitialConfig), 0600)
}
