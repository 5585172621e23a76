package main

import "kmi-checker/cmd"

func main() {
	cmd.Execute()
}
