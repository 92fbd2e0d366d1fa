// Example program demonstrating the gitcfg library API.
//
// Run from the repo root:
//
//	go run ./example/
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/MyCarrier-DevOps/go-gitconfig/pkg/gitcfg"
)

func main() {
	mode, err := gitcfg.UntrackedFiles(".")
	if err != nil {
		log.Fatalf("resolving untracked-files mode: %v", err)
	}
	fmt.Printf("status.showUntrackedFiles = %s (recurses into untracked dirs: %v)\n",
		mode, mode.RecursesUntrackedDirs())

	strategy, err := gitcfg.PushDefault(".")
	if err != nil {
		var malformed *gitcfg.MalformedValueError
		if errors.As(err, &malformed) {
			log.Fatalf("push.default is misconfigured: %v", err)
		}
		log.Fatalf("resolving push strategy: %v", err)
	}
	fmt.Printf("push.default = %s\n", strategy)

	name, err := gitcfg.GetConfigString(".", "user.name")
	if err != nil {
		log.Fatalf("reading user.name: %v", err)
	}
	if name == nil {
		fmt.Println("user.name is not set")
	} else {
		fmt.Printf("user.name = %s\n", *name)
	}
}
