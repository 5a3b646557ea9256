// Command inferschema infers a JSON Schema (Draft-07) from sample payloads
// given as files or on stdin, and prints the schema to stdout. Multiple
// samples are reconciled into one schema.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/inferschema/internal/query"
	"github.com/usestring/inferschema/pkg/infer"
	"github.com/usestring/inferschema/pkg/sample"
	"github.com/usestring/inferschema/pkg/schemadoc"
)

func main() {
	var (
		noFormat  = flag.Bool("no-format", false, "disable string format detection")
		yamlIn    = flag.Bool("yaml", false, "treat samples as YAML instead of JSON")
		selectExp = flag.String("select", "", "jq expression selecting the values to infer over")
		compact   = flag.Bool("compact", false, "emit the schema on one line")
		check     = flag.Bool("check", false, "compile the emitted schema before printing")
		verbose   = flag.Bool("v", false, "print an inference summary to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file ...]\n\nReads samples from the given files, or stdin when none are given.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Args(), *noFormat, *yamlIn, *selectExp, *compact, *check, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "inferschema:", err)
		os.Exit(1)
	}
}

func run(files []string, noFormat, yamlIn bool, selectExp string, compact, check, verbose bool) error {
	raw, err := readSamples(files)
	if err != nil {
		return err
	}

	values := make([]any, 0, len(raw))
	for i, data := range raw {
		v, err := decode(data, yamlIn)
		if err != nil {
			if len(files) > 0 {
				return fmt.Errorf("%s: %w", files[i], err)
			}
			return err
		}
		values = append(values, v)
	}

	if selectExp != "" {
		selected := make([]any, 0, len(values))
		eng := query.NewEngine()
		for _, v := range values {
			result, err := eng.Select(v, selectExp, 0)
			if err != nil {
				return err
			}
			selected = append(selected, result.Values...)
		}
		if len(selected) == 0 {
			return fmt.Errorf("selection %q produced no values", selectExp)
		}
		values = selected
	}

	opts := infer.DefaultOptions()
	opts.DetectFormat = !noFormat

	frag, err := infer.Samples(opts, values...)
	if err != nil {
		return err
	}

	var doc []byte
	if compact {
		doc, err = schemadoc.Document(frag)
	} else {
		doc, err = schemadoc.DocumentIndent(frag, "  ")
	}
	if err != nil {
		return err
	}

	if check {
		if _, err := schemadoc.Compile(doc); err != nil {
			return err
		}
	}

	if verbose {
		p := message.NewPrinter(language.English)
		p.Fprintf(os.Stderr, "%d sample(s), %d value(s) inferred, %d byte schema\n",
			len(raw), len(values), len(doc))
	}

	fmt.Println(string(doc))
	return nil
}

func readSamples(files []string) ([][]byte, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return [][]byte{data}, nil
	}
	samples := make([][]byte, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		samples = append(samples, data)
	}
	return samples, nil
}

func decode(data []byte, yamlIn bool) (any, error) {
	if yamlIn {
		return sample.DecodeYAML(data)
	}
	return sample.DecodeJSON(data)
}
