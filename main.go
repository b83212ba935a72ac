package main

import (
	"errors"
	"fmt"

	"github.com/penny-vault/indicharts/cmd"

	"github.com/spf13/viper"
)

func configureViper() {
	viper.SetDefault("output.width_in", 20)
	viper.SetDefault("output.height_in", 20)
	viper.SetDefault("output.chart_width_in", 10)
	viper.SetDefault("output.chart_height_in", 7)

	// read config file
	viper.SetConfigName("indicharts")
	viper.SetConfigType("toml")
	viper.AddConfigPath("/etc/indicharts/")
	viper.AddConfigPath("$HOME/.config/indicharts")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}
}

func main() {
	configureViper()
	cmd.Execute()
}
