package main

import "docvault/cmd/docvault-cli/cmd"

func main() {
	cmd.Execute()
}
