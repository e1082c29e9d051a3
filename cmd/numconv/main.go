// Command numconv reads numeric literals and prints the typed value of each
// one. Literals are read from the files named on the command line, decoded
// concurrently, or from standard input when there are none.
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/calebcase/safenum"
	"github.com/calebcase/safenum/decimal"
	"github.com/calebcase/safenum/literal"
)

// maxDigits is the most fractional digits a float32 can usefully show.
const maxDigits = 7

func main() {
	negative := flag.Bool("negative", true, "accept a leading minus sign")
	reals := flag.Bool("reals", true, "accept a decimal point and exponent")
	flag.Parse()

	schema := safenum.Schema{Negative: *negative, Reals: *reals}

	out := bufio.NewWriter(os.Stdout)

	var err error
	if flag.NArg() == 0 {
		err = run(context.Background(), schema, os.Stdin, out)
	} else {
		err = runFiles(context.Background(), schema, flag.Args(), out)
	}

	out.Flush()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

// runFiles decodes every file in its own goroutine and writes the results in
// argument order.
func runFiles(ctx context.Context, schema safenum.Schema, paths []string, w io.Writer) error {
	results := make([]bytes.Buffer, len(paths))

	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			return run(ctx, schema, f, &results[i])
		})
	}

	err := g.Wait()
	if err != nil {
		return err
	}

	for i, path := range paths {
		if len(paths) > 1 {
			fmt.Fprintf(w, "==> %s <==\n", path)
		}

		_, err = results[i].WriteTo(w)
		if err != nil {
			return err
		}
	}

	return nil
}

func run(ctx context.Context, schema safenum.Schema, r io.Reader, w io.Writer) (err error) {
	d := safenum.NewDecoder(schema, r)

	var l literal.Literal

	for {
		err = ctx.Err()
		if err != nil {
			return err
		}

		err = d.Decode(&l)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if safenum.Error.Has(err) {
			fmt.Fprintf(w, "error %v\n", err)
			continue
		}

		if err != nil {
			return err
		}

		describe(w, &l)
	}
}

func describe(w io.Writer, l *literal.Literal) {
	switch {
	case l.FitsInt32():
		fmt.Fprintf(w, "int32 %d\n", l.Int32())
	case l.FitsUint32():
		fmt.Fprintf(w, "uint32 %d\n", l.Uint32())
	default:
		digits := l.DigitsAfterPoint()
		if digits > maxDigits {
			digits = maxDigits
		}

		fmt.Fprintf(w, "float %.*f digits=%d", int(digits), l.Float32(), digits)

		if b, err := decimal.FromLiteral(*l); err == nil {
			fmt.Fprintf(w, " decimal=%de%d", b.Value.Int64(), b.Scale)
		}

		fmt.Fprintln(w)
	}
}
