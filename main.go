package main

import "sqlgate/cmd"

func main() {
	cmd.Execute()
}
