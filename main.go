/*
Copyright 2025 Andre Velsner
*/
package main

import "github.com/avelsner/crossrank/cmd"

func main() {
	cmd.Execute()
}
