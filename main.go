package main

import "stackgraph/cmd"

func main() {
	cmd.Execute()
}
