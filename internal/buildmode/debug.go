//go:build dev || debug

package buildmode

const debugBuild = true
