// Package main is the entry point of the larp-manager-server application.
// It sets up and starts the server by calling initialization functions from the internal package.
package main

import (
	"larp-manager-server/internal"
)

// main sets up and starts the server.
func main() {
	internal.Init()
}
