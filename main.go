package main

import "quicktabs/cmd"

func main() {
	cmd.Execute()
}
