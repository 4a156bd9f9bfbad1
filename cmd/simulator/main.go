// Package main runs the development backend simulator, an in-memory
// stand-in for the real lottery API used for local runs and end-to-end
// tests.
package main

import (
	"context"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/app"
)

func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.SetupSimulator()
}
