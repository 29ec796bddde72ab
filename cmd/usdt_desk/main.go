// Main CLI entrypoint for the EUR→USDT desk, using the cobra command framework.
package main

import (
	"fmt"
	"os"
)

// @title USDT Desk API
// @version 1.0
// @description EUR→USDT conversion at the live rate and the desk's operations ledger.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
