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

package viewer

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Tab is one rendered image shown by the viewer
type Tab struct {
	Title string
	Path  string
}

// TabsFromPaths names a tab after each file, e.g. "line.png" becomes "Line"
func TabsFromPaths(paths []string) []Tab {
	tabs := make([]Tab, 0, len(paths))
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name != "" {
			name = strings.ToUpper(name[:1]) + name[1:]
		}
		tabs = append(tabs, Tab{Title: name, Path: path})
	}
	return tabs
}

// Viewer is a window with one tab per rendered image
type Viewer struct {
	window fyne.Window
	tabs   *container.AppTabs
	status *widget.Label
}

// New builds the viewer window inside a; call Window().ShowAndRun() to
// display it
func New(a fyne.App, title string, tabs []Tab) *Viewer {
	v := &Viewer{
		window: a.NewWindow(title),
		tabs:   container.NewAppTabs(),
		status: widget.NewLabel(""),
	}
	v.status.TextStyle = fyne.TextStyle{Italic: true}

	for _, tab := range tabs {
		img := canvas.NewImageFromFile(tab.Path)
		img.FillMode = canvas.ImageFillContain
		v.tabs.Append(container.NewTabItem(tab.Title, img))
	}

	v.tabs.OnSelected = func(item *container.TabItem) {
		v.status.SetText(item.Text)
	}
	if len(tabs) > 0 {
		v.status.SetText(tabs[0].Title)
	}

	v.window.SetContent(container.NewBorder(nil, container.NewHBox(v.status), nil, nil, v.tabs))
	v.window.Resize(fyne.NewSize(1000, 800))
	return v
}

// Window returns the viewer's window
func (v *Viewer) Window() fyne.Window {
	return v.window
}

// TabCount returns the number of images in the viewer
func (v *Viewer) TabCount() int {
	return len(v.tabs.Items)
}

// Select shows the tab at idx
func (v *Viewer) Select(idx int) {
	v.tabs.SelectIndex(idx)
}

// Status returns the text of the status line
func (v *Viewer) Status() string {
	return v.status.Text
}
