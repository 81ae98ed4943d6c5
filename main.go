package main

import "github.com/vishnupriyancode/renaming-postman-final/cmd"

func main() {
	cmd.Execute()
}
