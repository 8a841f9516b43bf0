// Command gen_expects writes standalone wrappers for the dcTestCase builder
// methods, so that shared expectations can be composed with apply().
//
// Usage: go run gen_expects.go -- dc_test.go expects_test.go
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"
)

var builderMethod = regexp.MustCompile(`func \(dct dcTestCase\) (expect|with)(.+?)\((.+?)\) dcTestCase`)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) != 2 {
		log.Fatalf("usage: gen_expects SOURCE_test.go DEST_test.go")
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalln(err)
	}
	out, err := os.Create(args[1])
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := format(ctx, out, func(w io.Writer) error {
		return generate(w, args, src)
	}); err != nil {
		log.Fatalln(err)
	}
}

// format pipes everything written by gen through gofmt into out.
func format(ctx context.Context, out io.WriteCloser, gen func(w io.Writer) error) error {
	pr, pw := io.Pipe()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer out.Close()
		gofmt := exec.CommandContext(ctx, "gofmt")
		gofmt.Stdin = pr
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr
		if err := gofmt.Run(); err != nil {
			pr.CloseWithError(err)
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		err := gen(pw)
		pw.CloseWithError(err)
		return err
	})

	return eg.Wait()
}

func generate(w io.Writer, args []string, src []byte) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "package dc\n\n// @generated from %v\n\n", args[0])
	fmt.Fprintf(bw, "//go:generate go run ../scripts/gen_expects.go -- %v %v\n\n", args[0], args[1])

	for _, line := range bytes.Split(src, []byte("\n")) {
		if match := builderMethod.FindSubmatch(line); match != nil {
			writeWrapper(bw, match[1], match[2], match[3])
		}
	}
	return bw.Flush()
}

// writeWrapper writes a func that lifts a dcTestCase builder method into a
// standalone option, e.g. expectDCStack(values...) for dct.expectStack.
func writeWrapper(w io.Writer, base, what, params []byte) {
	var names [][]byte
	for _, param := range bytes.Split(params, []byte(",")) {
		fields := bytes.Fields(param)
		name := fields[0]
		if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
			name = append(name[:len(name):len(name)], "..."...)
		}
		names = append(names, name)
	}
	fmt.Fprintf(w, "func %sDC%s(%s) func(dcTestCase) dcTestCase {\n", base, what, params)
	fmt.Fprintf(w, "\treturn func(dct dcTestCase) dcTestCase {\n")
	fmt.Fprintf(w, "\t\treturn dct.%s%s(%s)\n", base, what, bytes.Join(names, []byte(", ")))
	fmt.Fprintf(w, "\t}\n}\n\n")
}
