package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/mathparse/vocab"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [text...]",
	Short: "Print the tokens of each input",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, log, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer log.Sync()
		return eachInput(cmd, args, func(text string) bool {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(p.Tokenize(text), " "))
			return true
		})
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Rewrite math words in each input as symbols",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, log, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer log.Sync()
		return eachInput(cmd, args, func(text string) bool {
			fmt.Fprintln(cmd.OutOrStdout(), p.Normalize(text))
			return true
		})
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Print the math part of each input",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, log, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer log.Sync()
		return eachInput(cmd, args, func(text string) bool {
			fmt.Fprintln(cmd.OutOrStdout(), p.Extract(text))
			return true
		})
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages [code...]",
	Short: "List supported languages, or the words of the given ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, code := range vocab.Codes() {
				t, err := vocab.Lookup(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", color.CyanString(code), t.Name())
			}
			return nil
		}
		for _, code := range args {
			g, err := vocab.WordGroupsForLanguage(strings.ToUpper(code))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, color.CyanString("%s:", strings.ToUpper(code)))
			printGroup(cmd, "numbers", g.Numbers)
			printGroup(cmd, "scales", g.Scales)
			printGroup(cmd, "binary operators", g.BinaryOperators)
			printGroup(cmd, "prefix operators", g.PrefixUnaryOperators)
			printGroup(cmd, "postfix operators", g.PostfixUnaryOperators)
		}
		return nil
	},
}

func printGroup[V any](cmd *cobra.Command, name string, m map[string]V) {
	if len(m) == 0 {
		return
	}
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	slices.Sort(words)
	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("  %s", name))
	for _, w := range words {
		fmt.Fprintf(cmd.OutOrStdout(), "    %-24s %v\n", w, m[w])
	}
}
