package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfbb/lpqr/internal/pixel"
)

var literalCmd = &cobra.Command{
	Use:   "literal [file]",
	Short: "Format a grid written in literal form ('#' on, '.' off, ' ' unset)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLiteral,
}

var flagRepr bool

func init() {
	literalCmd.Flags().StringVarP(&flagFormatter, "formatter", "f", "", "catalog formatter as kind.name (overrides config)")
	literalCmd.Flags().BoolVar(&flagRepr, "repr", false, "print the parsed grid instead of formatting it")
}

func runLiteral(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	lines, err := readLines(in)
	if err != nil {
		return err
	}
	g, err := pixel.ParseLiteral(lines)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagRepr {
		fmt.Fprintln(out, g)
		return nil
	}
	name := cfg.Formatter
	if flagFormatter != "" {
		name = flagFormatter
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	f, err := cat.Lookup(name)
	if err != nil {
		return err
	}
	return writeGrid(out, g, f, false)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}
