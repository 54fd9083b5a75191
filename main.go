// Copyright © 2026 The lovels authors

package main

import "github.com/lovely2d/lovels/cmd"

func main() {
	cmd.Execute()
}
