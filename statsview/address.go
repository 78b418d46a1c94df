// This file is part of Gopher2D.
//
// Gopher2D is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2D is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2D.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"strings"
)

// DefaultAddress of the statistics server.
const DefaultAddress = "localhost:12600"

const page = "/debug/statsview"

// URL returns the location of the statistics page for a server listening on
// the address. A missing host is taken to be localhost.
func URL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = fmt.Sprintf("localhost%s", addr)
	}
	return fmt.Sprintf("http://%s%s", addr, page)
}
