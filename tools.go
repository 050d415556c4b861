//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// The blank imports keep go generate tooling such as mockgen pinned in go.mod.
package basecamp

import (
	_ "go.uber.org/mock/mockgen"
)
