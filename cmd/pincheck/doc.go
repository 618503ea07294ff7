// Package pincheck provides the command-line interface for the pincheck tool.
// It wires configuration, the scan engine and the report writers together.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/varalys/pincheck/cmd/pincheck"
//	func main() { pincheck.Execute() }
package pincheck
