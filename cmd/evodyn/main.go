// Command evodyn derives pairwise-comparison dynamics for a normal-form game
// described in YAML and prints the results as JSON on stdout.
//
//	evodyn states   --population-size 10 --strategies 3 --list
//	evodyn matrix   --game pd.yaml --population-size 50 --beta 1 --mu 0.01
//	evodyn gradient --game pd.yaml --population-size 50 --beta 1 --state 25,25
//
// Every numeric flag falls back to an EVODYN_* environment variable.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
