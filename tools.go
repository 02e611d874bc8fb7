//go:build tools

package main

// Pins CLI tooling used by code generation.
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
