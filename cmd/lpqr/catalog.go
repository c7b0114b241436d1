package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [kind]",
	Short: "List available formatters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	kinds := cat.Kinds()
	if len(args) == 1 {
		kinds = []string{args[0]}
	}
	out := cmd.OutOrStdout()
	for _, kind := range kinds {
		names, err := cat.Names(kind)
		if err != nil {
			return err
		}
		for _, name := range names {
			f, err := cat.Get(kind, name)
			if err != nil {
				return err
			}
			glyphs := make([]string, 0, 4)
			for _, g := range f.Glyphs() {
				glyphs = append(glyphs, fmt.Sprintf("%q", g))
			}
			fmt.Fprintf(out, "  %-22s %s\n", kind+"."+name, strings.Join(glyphs, " "))
		}
	}
	return nil
}
