package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/bootstrap"
	"github.com/spacesedan/sentiscope/internal/logging"
	"github.com/spacesedan/sentiscope/internal/sentiment"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("analyze", flag.ContinueOnError)
	asJSON := flags.Bool("json", false, "print the report as JSON")
	markdown := flags.Bool("markdown", false, "treat the input as markdown")
	if err := flags.Parse(args); err != nil {
		return err
	}

	config.LoadEnv(config.AppEnv())
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	// stdout carries the report
	slog.SetDefault(logging.NewLogger(os.Stderr, cfg.SlogLevel()))

	text, err := readText(flags.Args(), stdin)
	if err != nil {
		return err
	}
	if n := utf8.RuneCountInString(text); n > cfg.MaxTextLength {
		return fmt.Errorf("text is too long: %d characters, limit is %d", n, cfg.MaxTextLength)
	}
	if *markdown {
		text = sentiment.ConvertMarkdownToText(text)
	}

	builder, err := bootstrap.NewReportBuilder(cfg)
	if err != nil {
		return fmt.Errorf("failed to build analyzers: %w", err)
	}
	report, err := builder.Build(text)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if report.IsEmpty() {
			return enc.Encode(struct{}{})
		}
		return enc.Encode(report)
	}

	renderReport(stdout, report, color.SupportColor())
	return nil
}

// readText prefers positional arguments and falls back to stdin.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(raw), nil
}
