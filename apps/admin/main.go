package main

import (
	"log"
	"os"

	"github.com/kidsmentor/portal/apps"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up storage
	store, err := apps.OpenKV()
	errAndDie(err)
	defer store.Close()

	// start CLI
	cli := commandLine{store: store}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
