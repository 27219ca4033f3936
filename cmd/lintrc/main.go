// Command lintrc loads, validates and resolves lint configurations.
//
//	lintrc validate --config .eslintrc.yaml
//	lintrc print-config src/index.test.ts
//	lintrc print-config --watch --plugin ./lintrc-plugin-company src/index.ts
//	lintrc presets
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
