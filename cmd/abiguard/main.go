package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/abiguard/abiguard-go/pkg/abiguard"
)

func main() {
	log.Printf("abiguard version: %s", abiguard.Version)
	log.Printf("cgo enabled: %v", abiguard.CGOEnabled())

	if err := abiguard.SelfCheck(); err != nil {
		if errors.Is(err, abiguard.ErrNotBuilt) {
			fmt.Printf("marshaling unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected self check failure: %v", err)
	}

	fmt.Println("marshaling self check passed")
}
