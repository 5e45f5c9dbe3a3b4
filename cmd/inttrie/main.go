// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command inttrie loads, verifies and profiles persistent int32 tries.
//
//	inttrie run    --size 100000 --seed 42 --workers 8
//	inttrie build  --size 1000000 --dump
//	inttrie verify entries.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
