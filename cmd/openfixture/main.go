package main

import "github.com/tinylabs/openfixture/cmd/openfixture/cmd"

func main() {
	cmd.Execute()
}
