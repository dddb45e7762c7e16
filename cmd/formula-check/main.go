package main

import (
	"flag"
	"log"
	"os"

	"github.com/KirkDiggler/togarashi-bot/internal/tools/formulacheck"
)

func main() {
	cfg, err := formulacheck.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := formulacheck.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("check formulas: %v", err)
	}
}
