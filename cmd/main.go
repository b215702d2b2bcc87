package main

import (
	cmd "github.com/kerbaras/artic/cmd/artic"
)

func main() {
	cmd.Execute()
}
