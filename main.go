package main

import "github.com/dxftools/dxftab/cmd"

func main() {
	cmd.Execute()
}
