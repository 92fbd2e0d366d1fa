package main

import "github.com/MyCarrier-DevOps/go-gitconfig/cmd"

func main() {
	cmd.Execute()
}
