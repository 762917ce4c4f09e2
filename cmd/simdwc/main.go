// Command simdwc counts lines, words, bytes, and characters in files or
// standard input, printing one row per input in request order.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	simdwc "github.com/biggeezerdevelopment/simdwc-go"
)

var (
	flagLines bool
	flagWords bool
	flagBytes bool
	flagChars bool
)

func main() {
	root := &cobra.Command{
		Use:   "simdwc [flags] [file ...]",
		Short: "Count lines, words, bytes, and characters",
		Long: `simdwc counts lines, words, bytes, and characters for each input.
With no file, or when a file is -, it reads standard input. Word
boundaries follow the locale: a UTF-8 locale selects Unicode whitespace
semantics, anything else selects ASCII.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().BoolVarP(&flagLines, "lines", "l", false, "print the newline count")
	root.Flags().BoolVarP(&flagWords, "words", "w", false, "print the word count")
	root.Flags().BoolVarP(&flagBytes, "bytes", "c", false, "print the byte count")
	root.Flags().BoolVarP(&flagChars, "chars", "m", false, "print the character count")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "simdwc:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !flagLines && !flagWords && !flagBytes && !flagChars {
		flagLines, flagWords, flagBytes = true, true, true
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{simdwc.Stdin}
	}

	resp := simdwc.Scan(simdwc.ScanRequest{
		Paths: paths,
		Mode:  simdwc.SelectMode(flagLines, flagWords, flagBytes, flagChars),
	})

	for _, res := range resp.PerFile {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "simdwc: %s: %s\n", res.Err.Path, res.Err.Kind)
			continue
		}
		printRow(res.Counts, rowName(res.Path))
	}
	if len(resp.PerFile) > 1 {
		printRow(resp.Total, "total")
	}
	if resp.AnyError {
		os.Exit(1)
	}
	return nil
}

func rowName(path string) string {
	if path == simdwc.Stdin {
		return ""
	}
	return path
}

func printRow(c simdwc.Counts, name string) {
	var sb strings.Builder
	if flagLines {
		fmt.Fprintf(&sb, "%8d", c.Lines)
	}
	if flagWords {
		fmt.Fprintf(&sb, "%8d", c.Words)
	}
	if flagBytes {
		fmt.Fprintf(&sb, "%8d", c.Bytes)
	}
	if flagChars {
		fmt.Fprintf(&sb, "%8d", c.Chars)
	}
	if name != "" {
		sb.WriteByte(' ')
		sb.WriteString(name)
	}
	fmt.Println(sb.String())
}
