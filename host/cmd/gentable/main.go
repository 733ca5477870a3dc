// Command gentable writes the precomputed sine table used by the
// firmware. Run through go generate in the core package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"inverter/core"
)

var (
	output = flag.String("o", "sinetable.go", "Output file")
	length = flag.Int("length", core.ReferenceLength, "Table length (even)")
	perRow = flag.Int("row", 16, "Samples per source line")
)

func main() {
	flag.Parse()

	table, err := core.Sine(*length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := table.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: generated table failed verification: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, render(table, *perRow), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// render produces gofmt-clean Go source for the table
func render(t core.Table, perRow int) []byte {
	var b bytes.Buffer

	fmt.Fprintln(&b, "// Code generated by host/cmd/gentable; DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "package core")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "// Reference is one period of the %d-sample sine table. At a %d Hz\n",
		t.Len(), core.ReferenceCycleHz)
	fmt.Fprintf(&b, "// cycle rate it traverses at exactly %d Hz.\n", core.ReferenceCycleHz/t.Len())
	fmt.Fprintln(&b, "var Reference = Table{")

	for i := 0; i < t.Len(); i += perRow {
		b.WriteByte('\t')
		end := min(i+perRow, t.Len())
		for j := i; j < end; j++ {
			if j > i {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%d,", t[j])
		}
		b.WriteByte('\n')
	}

	fmt.Fprintln(&b, "}")
	return b.Bytes()
}
