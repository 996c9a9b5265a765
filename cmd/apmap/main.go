// SPDX-License-Identifier: MIT
package main

import "github.com/apfabric/apmap/cmd/apmap/cmd"

func main() {
	cmd.Execute()
}
