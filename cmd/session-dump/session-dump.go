package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/ecatools/ecaplugin/internal/source"
	"github.com/ecatools/ecaplugin/internal/types"
	"github.com/ecatools/ecaplugin/internal/xmltree"
)

// Useful to confirm what the extractors see in a session or rack file.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: session-dump <file.ardour|file.rack>")
		os.Exit(1)
	}
	path := os.Args[1]

	data, err := source.ReadFile(path, 0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	tree, err := xmltree.Parse(data, path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	format, err := types.DetectFormat(tree.Document(), path)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
	} else {
		fmt.Printf("format: %s\n", format)
	}

	dumpElement(tree.Document().Root(), 0)
}

// interesting lists the attributes the extractors read.
var interesting = []string{
	"version", "name", "type", "unique-id", "active", "placement",
	"direction", "inputs", "input-connection", "sample-rate", "value",
}

func dumpElement(el *etree.Element, depth int) {
	if el == nil {
		return
	}

	indent := strings.Repeat("  ", depth)

	var attrs []string
	for _, key := range interesting {
		if a := el.SelectAttr(key); a != nil {
			attrs = append(attrs, fmt.Sprintf("%s=%q", key, a.Value))
		}
	}

	line := indent + el.Tag
	if len(attrs) > 0 {
		line += " [" + strings.Join(attrs, " ") + "]"
	}
	if text := strings.TrimSpace(el.Text()); text != "" && len(el.ChildElements()) == 0 {
		line += ": " + text
	}
	fmt.Println(line)

	for _, child := range el.ChildElements() {
		dumpElement(child, depth+1)
	}
}
