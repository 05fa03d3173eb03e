// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package main

import "github.com/blizzreplay/s2replay/cli"

func main() {
	cli.Execute()
}
