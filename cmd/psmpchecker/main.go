/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"os"

	"github.com/TalMaIka/psmpchecker/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
