// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "artemisup/cmd/artemisup"
)

func main() {
	cmd.Execute()
}
