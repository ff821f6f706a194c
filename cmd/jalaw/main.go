package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/coolbeans/jalaw/pkg/config"
	"github.com/coolbeans/jalaw/pkg/law"
	"github.com/coolbeans/jalaw/pkg/parser"
	"github.com/coolbeans/jalaw/pkg/render"
	"github.com/coolbeans/jalaw/pkg/schema"
	"github.com/coolbeans/jalaw/pkg/stats"
	"github.com/coolbeans/jalaw/pkg/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var version = "0.1.0"

// Global state shared by subcommands, set up before each run.
var (
	configPath string
	verbose    bool
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jalaw",
		Short: "Japanese statute XML parser",
		Long: `jalaw parses Japanese statutes published in the national law XML
schema into a typed document tree.

It can:
  - Validate a statute against the element vocabulary and report the
    exact path of the first violation
  - Print a statute, a single article or the table of contents as text
  - Report structural and textual statistics
  - Keep a directory of statutes parsed while they change`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err = cfg.Logger(verbose)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(textCmd())
	rootCmd.AddCommand(articleCmd())
	rootCmd.AddCommand(tocCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(schemaCmd())

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError reports parse failures with the file and element path on
// lines of their own.
func printError(w io.Writer, err error) {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		fmt.Fprintln(w, "Error:", err)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", perr.Kind)
	var ferr *fileError
	if errors.As(err, &ferr) {
		fmt.Fprintf(w, "  file:     %s\n", ferr.path)
	}
	if len(perr.Path) > 0 {
		fmt.Fprintf(w, "  at:       %s\n", perr.Path)
	}
	if perr.Message != "" {
		fmt.Fprintf(w, "  problem:  %s\n", perr.Message)
	}
	if perr.Expected != "" {
		fmt.Fprintf(w, "  expected: %s\n", perr.Expected)
	}
	if perr.Err != nil {
		fmt.Fprintf(w, "  cause:    %v\n", perr.Err)
	}
}

// fileError ties a parse failure to the file it came from.
type fileError struct {
	path string
	err  error
}

func (e *fileError) Error() string { return e.path + ": " + e.err.Error() }
func (e *fileError) Unwrap() error { return e.err }

func newParser() *parser.Parser {
	return parser.New(parser.WithLogger(logger))
}

func parseFile(path string) (*law.Law, error) {
	start := time.Now()
	l, err := newParser().ParseFile(path)
	if err != nil {
		return nil, &fileError{path: path, err: err}
	}
	logger.Debug("Parsed file", zap.String("path", path), zap.Duration("duration", time.Since(start)))
	return l, nil
}

// renderOptions applies the --ruby flag over the configured options.
func renderOptions(cmd *cobra.Command) (render.Options, error) {
	opts := cfg.RenderOptions()
	if ruby, _ := cmd.Flags().GetString("ruby"); ruby != "" {
		mode, err := render.ParseRubyMode(ruby)
		if err != nil {
			return opts, err
		}
		opts.Ruby = mode
	}
	return opts, nil
}

// summary is the machine-readable overview printed by parse.
type summary struct {
	Title      string           `json:"title" yaml:"title"`
	LawNum     string           `json:"law_num" yaml:"law_num"`
	Era        law.Era          `json:"era" yaml:"era"`
	Year       int              `json:"year" yaml:"year"`
	Type       law.LawType      `json:"type" yaml:"type"`
	Lang       string           `json:"lang" yaml:"lang"`
	Layout     string           `json:"layout" yaml:"layout"`
	Articles   []articleSummary `json:"articles" yaml:"articles"`
	Suppl      int              `json:"suppl_provisions" yaml:"suppl_provisions"`
	Appendices int              `json:"appendices" yaml:"appendices"`
}

type articleSummary struct {
	Num        string `json:"num" yaml:"num"`
	Title      string `json:"title" yaml:"title"`
	Caption    string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Paragraphs int    `json:"paragraphs" yaml:"paragraphs"`
}

func summarize(l *law.Law) summary {
	s := summary{
		Title:  l.Title(),
		LawNum: l.LawNum,
		Era:    l.Era,
		Year:   l.Year,
		Type:   l.Type,
		Lang:   l.Lang.String(),
	}
	if l.Body != nil {
		s.Layout = l.Body.MainProvision.Layout().String()
		s.Suppl = len(l.Body.SupplProvisions)
		s.Appendices = len(l.Body.Appendices)
	}
	for _, a := range l.Articles() {
		as := articleSummary{Num: a.Num, Title: a.Title.Text(), Paragraphs: len(a.Paragraphs)}
		if a.Caption != nil {
			as.Caption = a.Caption.Text()
		}
		s.Articles = append(s.Articles, as)
	}
	return s
}

func printStructured(v any, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file.xml>",
		Short: "Parse and validate a statute",
		Long: `Parse a statute and print an overview of its structure.

A document that breaks the schema fails with the path of the offending
element.

Example:
  jalaw parse 321CONSTITUTION.xml
  jalaw parse 321CONSTITUTION.xml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			l, err := parseFile(args[0])
			if err != nil {
				return err
			}
			s := summarize(l)
			if format != "summary" {
				return printStructured(s, format)
			}

			fmt.Printf("%s\n", s.Title)
			fmt.Printf("  Number:     %s\n", s.LawNum)
			fmt.Printf("  Era/Year:   %s %d\n", s.Era, s.Year)
			fmt.Printf("  Type:       %s\n", s.Type)
			fmt.Printf("  Language:   %s\n", s.Lang)
			fmt.Printf("  Layout:     %s\n", s.Layout)
			fmt.Printf("  Articles:   %d\n", len(s.Articles))
			fmt.Printf("  Suppl:      %d\n", s.Suppl)
			fmt.Printf("  Appendices: %d\n", s.Appendices)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "summary", "Output format (summary, json, yaml)")
	return cmd
}

func textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text <file.xml>",
		Short: "Print a statute as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := renderOptions(cmd)
			if err != nil {
				return err
			}
			l, err := parseFile(args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.LawToPlaintext(l, opts))
			return nil
		},
	}
	cmd.Flags().String("ruby", "", "Ruby output (base, gloss, both)")
	return cmd
}

func articleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article <file.xml> [num]",
		Short: "Print articles of the main provision",
		Long: `Print one article by its number attribute, or every article whose text
contains the --grep term. Matching ignores full-width and half-width
differences.

Example:
  jalaw article 321CONSTITUTION.xml 9
  jalaw article 321CONSTITUTION.xml --grep 戦争`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grep, _ := cmd.Flags().GetString("grep")
			if len(args) == 1 && grep == "" {
				return fmt.Errorf("either an article number or --grep is required")
			}
			opts, err := renderOptions(cmd)
			if err != nil {
				return err
			}
			l, err := parseFile(args[0])
			if err != nil {
				return err
			}

			if len(args) == 2 {
				a := l.FindArticle(args[1])
				if a == nil {
					return fmt.Errorf("article %s not found", args[1])
				}
				fmt.Print(render.ArticleToPlaintext(a, opts))
				return nil
			}

			term := law.NormalizeText(grep)
			matches := 0
			for _, a := range l.Articles() {
				if !strings.Contains(law.NormalizeText(strings.Join(law.Texts(a), "")), term) {
					continue
				}
				if matches > 0 {
					fmt.Println()
				}
				fmt.Print(render.ArticleToPlaintext(a, opts))
				matches++
			}
			logger.Debug("Searched articles", zap.String("term", term), zap.Int("matches", matches))
			if matches == 0 {
				return fmt.Errorf("no article contains %q", grep)
			}
			return nil
		},
	}
	cmd.Flags().String("grep", "", "Print every article containing this text")
	cmd.Flags().String("ruby", "", "Ruby output (base, gloss, both)")
	return cmd
}

func tocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toc <file.xml>",
		Short: "Print the table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseFile(args[0])
			if err != nil {
				return err
			}
			if l.Body.TOC == nil {
				fmt.Println("No table of contents.")
				return nil
			}
			fmt.Print(render.TOCToPlaintext(l.Body.TOC, cfg.RenderOptions()))
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file.xml>...",
		Short: "Report statistics for statutes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			var all []*stats.Stats
			for _, path := range args {
				l, err := parseFile(path)
				if err != nil {
					return err
				}
				all = append(all, stats.Compute(l))
			}
			if format != "table" {
				return printStructured(all, format)
			}

			for i, s := range all {
				if i > 0 {
					fmt.Println()
				}
				printStats(s)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func printStats(s *stats.Stats) {
	fmt.Printf("%s (%s)\n", s.Title, s.LawNum)
	fmt.Printf("  Layout:      %s\n", s.Layout)
	fmt.Printf("  Sentences:   %d\n", s.Sentences)
	fmt.Printf("  Characters:  %d\n", s.Characters)
	fmt.Printf("  Words:       %d (ideographic %d, kana %d, numeric %d)\n", s.Words, s.Ideographs, s.Kana, s.Numbers)
	fmt.Printf("  Ruby:        %d\n", s.Rubies)
	fmt.Println("  Elements:")

	kinds := make([]string, 0, len(s.Elements))
	for k := range s.Elements {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("    %-28s %d\n", k, s.Elements[law.Kind(k)])
	}
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Parse a directory of statutes and re-parse on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			if workers == 0 {
				workers = cfg.Watch.Workers
			}

			w := watch.New(args[0], newParser(), watch.Options{
				Patterns: cfg.Watch.Patterns,
				Debounce: cfg.Watch.Debounce,
				Workers:  workers,
			}, logger)
			w.SetOnChange(func(ev watch.Event) {
				switch {
				case ev.Op == watch.OpRemove:
					fmt.Printf("%-7s %s\n", ev.Op, ev.Path)
				case ev.Err != nil:
					fmt.Printf("%-7s %s: %v\n", ev.Op, ev.Path, ev.Err)
				default:
					fmt.Printf("%-7s %s: %s (%d articles, %s)\n", ev.Op, ev.Path, ev.Law.Title(), len(ev.Law.Articles()), ev.Duration.Round(time.Millisecond))
				}
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			events, err := w.Scan(ctx)
			if err != nil {
				return err
			}
			failed := 0
			for _, ev := range events {
				if ev.Err != nil {
					failed++
				}
			}
			fmt.Printf("Parsed %d files (%d failed). Watching %s, press Ctrl+C to stop.\n", len(events), failed, args[0])

			if err := w.Watch(); err != nil {
				return err
			}
			<-ctx.Done()
			w.StopWatch()
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		},
	}
	cmd.Flags().Int("workers", 0, "Parallel parses (default from config)")
	return cmd
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [element]",
		Short: "Describe the element vocabulary",
		Long: `Without arguments, list every element of the vocabulary. With an element
name, print its content model and attributes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := schema.New()
			if len(args) == 0 {
				for _, name := range s.Elements() {
					fmt.Println(name)
				}
				return nil
			}

			m, ok := s.Model(args[0])
			if !ok {
				return fmt.Errorf("unknown element %s", args[0])
			}
			fmt.Printf("%s (%s)\n", m.Element, m.Content)
			if len(m.Particles) > 0 {
				fmt.Println("  Children:")
				for _, p := range m.Particles {
					fmt.Printf("    %-30s %s\n", p.Element, p.Occurs)
				}
			}
			for _, c := range m.Choices {
				kind := "optional"
				if c.Required {
					kind = "required"
				}
				fmt.Printf("  Exclusive (%s):\n", kind)
				for _, p := range c.Alternatives {
					fmt.Printf("    %-30s %s\n", p.Element, p.Occurs)
				}
			}
			if len(m.Attributes) > 0 {
				fmt.Println("  Attributes:")
				for _, a := range m.Attributes {
					req := ""
					if a.Required {
						req = ", required"
					}
					fmt.Printf("    %-30s %s%s", a.Name, a.Type, req)
					if len(a.Values) > 0 {
						fmt.Printf(" [%s]", strings.Join(a.Values, " "))
					}
					fmt.Println()
				}
			}
			return nil
		},
	}
}
