//go:build tools
// +build tools

// Package sentiscope pins code generators (mockgen) so go.mod tracks them.
package sentiscope

import (
	_ "go.uber.org/mock/mockgen"
)
