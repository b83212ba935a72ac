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
	"fyne.io/fyne/v2/app"
	"github.com/penny-vault/indicharts/common"
	"github.com/penny-vault/indicharts/viewer"
	"github.com/rs/zerolog/log"
)

// showImages blocks until the viewer window is closed
func showImages(paths []string) {
	log.Info().Int("NumImages", len(paths)).Msg("opening viewer")
	a := app.NewWithID("com.github.penny-vault.indicharts")
	v := viewer.New(a, common.ProgramName, viewer.TabsFromPaths(paths))
	v.Window().ShowAndRun()
}
