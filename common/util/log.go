package util

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/coinevo/coinevo-core/common"
)

func init() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	log.SetFormatter(customFormatter)
	customFormatter.FullTimestamp = true
}

// InitLog sets the log level from config. Called after the config file has
// been read in.
func InitLog() {
	if level, err := log.ParseLevel(viper.GetString(common.CfgLogLevels)); err == nil {
		log.SetLevel(level)
	}
	if viper.GetBool(common.CfgLogDebug) {
		log.SetLevel(log.DebugLevel)
	}
}
