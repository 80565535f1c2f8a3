// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/presentation/logger"
)

// Address is the address of the stats server.
const Address = "localhost:12700"

const url = "/debug/statsview"

// sampling interval of the graphs in milliseconds. frame presentation is
// bursty so a short interval is more useful than the default
const interval = 500

// Launch a new goroutine running the statsview.
func Launch(output io.Writer) {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(interval),
		viewer.WithTimeFormat("15:04:05"),
	)

	go func() {
		mgr := statsview.New()
		if err := mgr.Start(); err != nil {
			logger.Log(logger.Allow, "statsview", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
