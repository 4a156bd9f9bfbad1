// Package main Sistema de Bilhetes
//
// Terminal front-end for the daily lottery backend. It drives a
// session controller that owns all application state and talks to the
// REST API; the terminal itself only renders state and forwards
// commands.
package main

import (
	"context"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/app"
)

func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
