package main

import (
	"log"
	"os"

	"github.com/tdewolff/argp"
)

var (
	Error   *log.Logger
	Warning *log.Logger
)

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)
	Warning = log.New(os.Stderr, "WARNING: ", 0)

	cmd := argp.New("Font conversion tool for TTF, OTF, WOFF and WOFF2 files")
	cmd.AddCmd(&Convert{}, "convert", "Convert a font file to another format")
	cmd.Parse()
}
