// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/penny-vault/indicharts/common"
	"github.com/rs/zerolog/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Profile bool
var Trace bool

var cfgFile string
var closeLog = func() {}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches /etc/indicharts, $HOME/.config/indicharts and . for indicharts.toml)")

	// Input and output
	viper.BindEnv("input", "INDICHARTS_INPUT")
	rootCmd.PersistentFlags().StringP("input", "i", "population_df.csv", "Indicator table to load (.csv or .csv.lz4)")
	viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))

	viper.BindEnv("output.dir", "INDICHARTS_OUT")
	rootCmd.Flags().StringP("out", "o", ".", "Directory rendered images and the manifest are written to")
	viper.BindPFlag("output.dir", rootCmd.Flags().Lookup("out"))

	viper.BindEnv("viewer.enabled", "INDICHARTS_SHOW")
	rootCmd.Flags().Bool("show", false, "Open a window with the rendered images when done")
	viper.BindPFlag("viewer.enabled", rootCmd.Flags().Lookup("show"))

	rootCmd.Flags().String("header", "", "Bold line printed under the dashboard title")
	viper.BindPFlag("dashboard.header", rootCmd.Flags().Lookup("header"))

	// Logging configuration
	viper.BindEnv("log.level", "INDICHARTS_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.pretty", "INDICHARTS_LOG_PRETTY")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "Write human readable logs instead of JSON")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))

	viper.BindEnv("log.report_caller", "INDICHARTS_LOG_REPORT_CALLER")
	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller"))

	viper.BindEnv("log.output", "INDICHARTS_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stderr", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	// Tracing
	viper.BindEnv("otlp.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")

	rootCmd.Flags().BoolVar(&Profile, "cpu-profile", false, "Run pprof and save in profile.out")
	rootCmd.Flags().BoolVar(&Trace, "trace", false, "Trace program execution and save in trace.out")
}

var rootCmd = &cobra.Command{
	Use:     "indicharts",
	Version: common.CurrentVersion.String(),
	Short:   "Render indicator charts and a summary dashboard",
	Long: `Load a table of country indicators and render a line chart, a grouped bar
chart, a donut chart, a stacked area chart and a 2x2 dashboard combining them.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "could not read config file %s: %v\n", cfgFile, err)
				os.Exit(1)
			}
		}
		closeLog = common.SetupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := render(cmd.Context()); err != nil {
			log.Fatal().Err(err).Msg("could not render charts")
		}
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
