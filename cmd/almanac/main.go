// Command almanac resolves seed tables to their lowest location.
//
//	almanac solve input.txt --mode both
//	almanac trace input.txt 79
//	almanac gen --seed 7 --rules 12 | almanac solve -
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
