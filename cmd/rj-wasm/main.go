//go:build js && wasm

// Command rj-wasm exposes the rj parser to a JavaScript host. It
// registers two global functions, both taking and returning strings:
//
//	rjParse(text)  - parse text, return an annotated debug dump
//	rjFormat(text) - parse text, return the indented JSON form
//
// Parse failures are returned as "error: ..." strings, since errors do
// not cross the wasm boundary as values.
package main

import (
	"syscall/js"

	"github.com/rjson/rj"
)

func main() {
	js.Global().Set("rjParse", js.FuncOf(parse))
	js.Global().Set("rjFormat", js.FuncOf(format))
	select {} // keep the runtime alive for host callbacks
}

func parse(_ js.Value, args []js.Value) any {
	doc, err := rj.Parse(args[0].String())
	if err != nil {
		return "error: " + err.Error()
	}
	return rj.Dump(doc)
}

func format(_ js.Value, args []js.Value) any {
	doc, err := rj.Parse(args[0].String())
	if err != nil {
		return "error: " + err.Error()
	}
	return rj.Format(doc, 2)
}
