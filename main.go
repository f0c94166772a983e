package main

import "github.com/zenigata-dev/zeni/cmd"

func main() {
	cmd.Execute()
}
