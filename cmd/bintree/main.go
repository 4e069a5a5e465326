// bintree prices a vanilla option with every binomial tree in package pricing
// and prints one row per tree for European, Bermudan and American exercise.
//
// Valuations go through a memocache.SyncCache keyed by pricing.Params, so
// --repeat reprices from memory after the first pass.
//
// Usage:
//
//	bintree [--type put] [--underlying 36] [--strike 40] [--steps 5000] ...
//
// Every flag can also be set through a BINTREE_* environment variable,
// e.g. BINTREE_STEPS=801.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
