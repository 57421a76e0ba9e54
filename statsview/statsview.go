// This file is part of Retroriv.
//
// Retroriv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retroriv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retroriv.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const url = "/debug/statsview"

// Launch a new goroutine running the statsview. The returned function stops
// the server.
func Launch(output io.Writer) func() {
	viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithTheme(viewer.ThemeWalden))
	mgr := statsview.New()

	go mgr.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)

	return mgr.Stop
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
