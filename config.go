package rowflow

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var configOnce sync.Once

// loadConfig reads settings from a rowflowrc file and ROWFLOW_* environment
// variables. It runs once per process, the first time a strategy that takes
// defaults from configuration is built.
func loadConfig() {
	configOnce.Do(func() {
		viper.SetConfigName("rowflowrc")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.rowflow")

		setupDefaults()

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Warnf("Unable to read config file: %s", err)
			}
		}

		viper.SetEnvPrefix("rowflow")
		viper.AutomaticEnv()

		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	})
}

func setupDefaults() {
	defaultSettings := map[string]interface{}{
		"verbose":          false,
		"join_suffix_a":    "_1", // appended to colliding columns of the first join input
		"join_suffix_b":    "_2", // appended to colliding columns of the second join input
		"tf_result_column": "tf",
	}
	for key, value := range defaultSettings {
		viper.SetDefault(key, value)
	}

	aliases := map[string]string{
		"verbose": "v",
	}
	for key, alias := range aliases {
		viper.RegisterAlias(alias, key)
	}
}

// joinConfig configures a built-in Joiner
type joinConfig struct {
	SuffixA string
	SuffixB string
}

func newJoinConfig() *joinConfig {
	loadConfig()
	return &joinConfig{
		SuffixA: viper.GetString("join_suffix_a"),
		SuffixB: viper.GetString("join_suffix_b"),
	}
}

// JoinOption allows configuration of a built-in Joiner
type JoinOption func(*joinConfig)

// WithSuffixes sets the suffixes appended to a non-key column present in
// both join inputs: suffixA to the value from the first input, suffixB to
// the value from the second.
func WithSuffixes(suffixA, suffixB string) JoinOption {
	return func(c *joinConfig) {
		c.SuffixA = suffixA
		c.SuffixB = suffixB
	}
}

// tfConfig configures the TermFrequency Reducer
type tfConfig struct {
	ResultColumn string
}

func newTFConfig() *tfConfig {
	loadConfig()
	return &tfConfig{
		ResultColumn: viper.GetString("tf_result_column"),
	}
}

// TFOption allows configuration of the TermFrequency Reducer
type TFOption func(*tfConfig)

// WithResultColumn sets the column TermFrequency stores frequencies in
func WithResultColumn(col string) TFOption {
	return func(c *tfConfig) {
		c.ResultColumn = col
	}
}
