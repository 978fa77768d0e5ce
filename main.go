package main

import "github.com/eitanbaron2006/smartalbum-ai-3/cmd"

func main() {
	cmd.Execute()
}
