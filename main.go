package main

import "lineage/cmd"

func main() {
	cmd.Execute()
}
