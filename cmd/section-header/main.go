// Command section-header prints a "//" section banner around its arguments.
//
//	$ section-header Request handling
//	////////////////////////////////////////////////////////////////
//	//                      Request handling                      //
//	////////////////////////////////////////////////////////////////
package main

import (
	"os"
	"path/filepath"

	"github.com/nesv/sectionheader"
)

func main() {
	newCmd(filepath.Base(os.Args[0])).Exec()
}

func newCmd(name string) *sectionheader.Cmd {
	return sectionheader.New(name, "<header_text>", run)
}

func run(cmd *sectionheader.Cmd, args []string) error {
	if len(args) == 0 {
		return &sectionheader.UsageError{Reason: "no header text"}
	}
	return sectionheader.Write(cmd.Stdout, sectionheader.Label(args))
}
