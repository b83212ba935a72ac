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
	"fmt"

	"github.com/penny-vault/indicharts/charts"
	"github.com/penny-vault/indicharts/dashboard"
	"github.com/penny-vault/indicharts/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the series behind each chart",
	Long:  `Print the shaped series for the line, bar, donut and area charts as ASCII tables`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		records, err := data.ReadRecords(viper.GetString("input"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not load input")
		}

		countries := dashboard.DefaultCountries

		line, err := charts.LineSeries(records, dashboard.LineIndicator, dashboard.LineYears, countries)
		if err != nil {
			log.Fatal().Err(err).Msg("could not build line series")
		}
		fmt.Printf("%s (%s)\n", dashboard.LineIndicator, dashboard.LineYears)
		fmt.Println(line.Table())

		bar, err := charts.BarSeries(records, dashboard.BarIndicator, dashboard.BarYears, countries)
		if err != nil {
			log.Fatal().Err(err).Msg("could not build bar series")
		}
		fmt.Printf("%s %v\n", dashboard.BarIndicator, dashboard.BarYears)
		fmt.Println(bar.Table())

		slices, err := charts.DonutSlices(records, dashboard.DonutIndicator, dashboard.DonutYear)
		if err != nil {
			log.Fatal().Err(err).Msg("could not build donut slices")
		}
		fmt.Printf("%s (%d)\n", dashboard.DonutIndicator, dashboard.DonutYear)
		fmt.Println(charts.SlicesTable(slices))

		area, err := charts.AreaSeries(records, dashboard.AreaIndicator, dashboard.AreaYears, countries)
		if err != nil {
			log.Fatal().Err(err).Msg("could not build area series")
		}
		fmt.Printf("%s (%s)\n", dashboard.AreaIndicator, dashboard.AreaYears)
		fmt.Println(area.Table())
	},
}
