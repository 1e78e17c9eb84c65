// Command rj parses a JSON document and prints it back out.
//
// The document comes from the positional argument, or from standard
// input when the argument is omitted. By default the parsed structure is
// printed as an annotated debug tree; with --pretty the indented JSON
// form is printed instead. Malformed input is reported on standard error
// and the process exits non-zero.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/rjson/rj"
)

func main() {
	app := kingpin.New("rj", "Parse and pretty-print RFC 8259 JSON documents.")
	jsonArg := app.Arg("json", "JSON text to parse. Reads standard input when omitted.").String()
	pretty := app.Flag("pretty", "Print the indented form instead of a debug dump.").Short('p').Bool()
	verbose := app.Flag("verbose", "Log document statistics to standard error.").Short('v').Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	input := *jsonArg
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithErr(fmt.Errorf("failed to read standard input: %w", err))
		}
		input = string(data)
	}

	doc, err := rj.Parse(input)
	if err != nil {
		exitWithErr(fmt.Errorf("invalid JSON document: %w", err))
	}

	if *verbose {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		_ = level.Info(logger).Log(
			"msg", "parsed document",
			"kind", doc.Kind(),
			"len", doc.Len(),
			"bytes", len(input),
		)
	}

	if *pretty {
		fmt.Println(rj.Format(doc, 2))
	} else {
		fmt.Println(rj.Dump(doc))
	}
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("rj: %v", err))
	os.Exit(1)
}
