package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
