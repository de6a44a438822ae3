package main

import "github.com/k-mcmonagle/gocable/cmd"

func main() {
	cmd.Execute()
}
