package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/mathparse"
	"github.com/zephyrtronium/mathparse/internal/config"
	"github.com/zephyrtronium/mathparse/internal/logging"
)

var (
	langFlag  string
	stopFlag  []string
	verbose   bool
	echoFlag  bool
	kindsFlag bool
)

// rootCmd evaluates expressions given as arguments or as lines of stdin.
var rootCmd = &cobra.Command{
	Use:   "mathparse [expression...]",
	Short: "Evaluate math written in symbols or words",
	Long: `Mathparse evaluates arithmetic expressions written in symbols, in the
words of a supported language, or a mix of both.

Each argument is evaluated as a separate expression. With no arguments,
each line of standard input is evaluated.

Configuration is also read from MATHPARSE_LANGUAGE, MATHPARSE_STOPWORDS,
MATHPARSE_LOG_LEVEL, and MATHPARSE_LOG_DEV. Flags take priority.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, log, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer log.Sync()
		return eachInput(cmd, args, func(expr string) bool {
			v, err := p.Parse(expr)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("%s: %v", expr, err))
				return false
			}
			switch {
			case echoFlag && kindsFlag:
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v (%v)\n", expr, v, v.Kind())
			case echoFlag:
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", expr, v)
			case kindsFlag:
				fmt.Fprintf(cmd.OutOrStdout(), "%v (%v)\n", v, v.Kind())
			default:
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return true
		})
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(silentError); !ok {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "language code of math words (default symbols only)")
	rootCmd.PersistentFlags().StringSliceVarP(&stopFlag, "stopword", "s", nil, "word to ignore (any number of times)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each stage of parsing")
	rootCmd.Flags().BoolVar(&echoFlag, "echo", false, "print each expression before its result")
	rootCmd.Flags().BoolVar(&kindsFlag, "kind", false, "print the kind of each result")

	rootCmd.AddCommand(tokensCmd, normalizeCmd, extractCmd, languagesCmd)
}

// setup builds the parser and logger from the environment and flags. When
// lenient is set, invalid configuration falls back to defaults with a
// warning instead of failing.
func setup(cmd *cobra.Command, lenient bool) (*mathparse.Parser, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		if !lenient {
			return nil, nil, err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("warning: %v; using defaults", err))
		cfg = config.Default()
	}
	if cmd.Flags().Changed("lang") {
		cfg.Language = langFlag
	}
	if cmd.Flags().Changed("stopword") {
		cfg.Stopwords = stopFlag
	}
	lc := cfg.Logging()
	if verbose {
		lc.Level = "debug"
		lc.Development = true
	}
	var log *zap.Logger
	if lenient {
		log = logging.NewOrNop(lc)
	} else {
		log, err = logging.New(lc)
		if err != nil {
			return nil, nil, fmt.Errorf("couldn't create logger: %w", err)
		}
	}
	p, err := mathparse.New(
		mathparse.Language(strings.ToUpper(cfg.Language)),
		mathparse.Stopwords(cfg.Stopwords...),
		mathparse.WithLogger(log),
	)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}
	return p, log, nil
}

// eachInput calls f with each argument, or with each non-blank line of stdin
// if there are no arguments. It returns an error if any call fails.
func eachInput(cmd *cobra.Command, args []string, f func(string) bool) error {
	ok := true
	if len(args) > 0 {
		for _, arg := range args {
			ok = f(arg) && ok
		}
	} else {
		var err error
		ok, err = eachLine(cmd.InOrStdin(), f)
		if err != nil {
			return err
		}
	}
	if !ok {
		return errFailed
	}
	return nil
}

func eachLine(r io.Reader, f func(string) bool) (bool, error) {
	ok := true
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ok = f(line) && ok
	}
	return ok, sc.Err()
}

// errFailed is returned when some expression failed. Its message is already
// printed, so main only sets the exit status.
var errFailed = silentError("one or more expressions failed")

type silentError string

func (err silentError) Error() string { return string(err) }
