package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gopkg.in/akavel/mdseq.v1/quote"
	"gopkg.in/akavel/mdseq.v1/seq"
)

var (
	mapPrefix  string
	mapNoStrip bool
)

var mapCmd = &cobra.Command{
	Use:   "map [file|-]",
	Short: "Re-prefix lines and print the source offset of every rune",
	Long: `Reads a markdown document (standard input when no file or - is given),
removes one level of blockquote markers from each line, prefixes each line
anew, and prints every resulting line followed by the source offset of each
of its runes. Runes that come from the prefix are shown as -.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVarP(&mapPrefix, "prefix", "p", "> ", "prefix to put in front of every line")
	mapCmd.Flags().BoolVar(&mapNoStrip, "no-strip", false, "keep existing blockquote markers")
}

func runMap(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr())

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	text, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	src := seq.NewSource(text)
	log.Debug("read input", "path", path, "runes", src.Len())

	lines := seq.Lines(src.Sequence())
	if !mapNoStrip {
		lines = quote.Strip(src.Sequence())
	}
	lines = quote.Requote(lines, mapPrefix)
	log.Debug("requoted", "lines", len(lines), "prefix", mapPrefix)

	out := cmd.OutOrStdout()
	for _, line := range lines {
		line = seq.TrimRight(line, "\n")
		_, err := fmt.Fprintf(out, "%s\t%s\n", strconv.Quote(line.String()), formatOffsets(line))
		if err != nil {
			return err
		}
	}
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(buf), nil
}

func formatOffsets(s seq.Sequence) string {
	fields := make([]string, 0, s.Len())
	for _, off := range seq.Offsets(s) {
		if !off.OK {
			fields = append(fields, "-")
			continue
		}
		fields = append(fields, strconv.Itoa(off.Pos))
	}
	return strings.Join(fields, " ")
}
