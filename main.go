package main

import "github.com/varalys/pincheck/cmd/pincheck"

func main() { pincheck.Execute() }
