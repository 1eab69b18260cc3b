package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/fontwork/fontconv"
	"github.com/tdewolff/prompt"
)

type Convert struct {
	Quiet  bool   `short:"q" desc:"Suppress output except for errors."`
	Force  bool   `short:"f" desc:"Force overwriting existing files."`
	Index  int    `short:"i" desc:"Index into font collection (used with TTC or OTC)."`
	Output string `short:"o" desc:"Output font file or directory. Derived from the input file when not set."`
	Input  string `index:"0" desc:"Input font file (TTF, OTF, WOFF or WOFF2)."`
	Format string `index:"1" desc:"Target font format: ttf, otf, woff or woff2."`
}

func (cmd *Convert) Run() error {
	if cmd.Quiet {
		Warning = log.New(ioutil.Discard, "", 0)
	}

	if cmd.Input == "" {
		return fmt.Errorf("input file name not set")
	} else if cmd.Format == "" {
		return fmt.Errorf("target format not set")
	}

	target, err := fontconv.ParseFormat(cmd.Format)
	if err != nil {
		Error.Printf("invalid target format %q, valid formats are: ttf, otf, woff, woff2\n", cmd.Format)
		os.Exit(exitCode(err))
	}

	fs := fontconv.DiskFS{}
	resolution, err := fontconv.ResolveOutput(fs, cmd.Input, target, cmd.Output)
	if err != nil {
		Error.Println(err)
		os.Exit(exitCode(err))
	}
	if !cmd.Force && fs.IsFile(resolution.Path) {
		if !prompt.YesNo(fmt.Sprintf("%s already exists, overwrite?", resolution.Path), false) {
			return fmt.Errorf("file already exists")
		}
	}
	if resolution.CorrectedExt {
		Warning.Printf("output extension corrected to %s: %s\n", target.Extension(), resolution.Path)
	}

	converter := &fontconv.Converter{FS: fs, Fonts: &fontconv.Transcoder{Index: cmd.Index}}
	result, err := converter.Execute(fontconv.Request{Input: cmd.Input, Target: target, Output: cmd.Output})
	if err != nil {
		Error.Println(err)
		os.Exit(exitCode(err))
	}

	if !cmd.Quiet {
		rLen := fileSize(cmd.Input)
		wLen := fileSize(result.Output)
		ratio := 1.0
		if 0 < rLen {
			ratio = float64(wLen) / float64(rLen)
		}
		fmt.Printf("%v:  %v => %v (%.1f%%)\n", filepath.Base(result.Output), formatBytes(rLen), formatBytes(wLen), ratio*100.0)
	}
	return nil
}

// exitCode maps the conversion error taxonomy onto process exit codes.
func exitCode(err error) int {
	var notFound *fontconv.InputNotFoundError
	var unknown *fontconv.UnknownFormatError
	var notAllowed *fontconv.ConversionNotAllowedError
	var failed *fontconv.ConversionFailedError
	var outputDir *fontconv.OutputDirError
	switch {
	case errors.As(err, &notFound):
		return 1
	case errors.As(err, &unknown), errors.As(err, &notAllowed), errors.As(err, &failed), errors.As(err, &outputDir):
		return 2
	}
	return 3
}

func fileSize(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return uint64(info.Size())
}
