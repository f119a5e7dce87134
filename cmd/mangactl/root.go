package main

import (
	"encoding/json"
	"fmt"
	"io"

	"mangaapi/internal/config"
	"mangaapi/internal/extract"
	"mangaapi/internal/platform/llm"
	"mangaapi/internal/platform/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type rootOptions struct {
	verbose bool
	format  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "mangactl",
		Short:         "Operator tools for the manga catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	root.PersistentFlags().StringVarP(&opts.format, "output", "o", "json", "Output format: json or yaml")

	root.AddCommand(newPromptCmd(opts))
	root.AddCommand(newExtractCmd(opts))
	root.AddCommand(newTokenCmd())
	return root
}

// pipeline wires the extraction service from the environment.
func (o *rootOptions) pipeline() (*extract.Service, config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, nil, err
	}
	log, err := logger.NewCLI(o.verbose)
	if err != nil {
		return nil, cfg, nil, err
	}
	fetcher := extract.NewFetcher(extract.FetcherOptions{
		Timeout:   cfg.Fetch.Timeout,
		RPS:       cfg.Fetch.RPS,
		UserAgent: cfg.Fetch.UserAgent,
		MaxChars:  cfg.Fetch.MaxSourceChars,
	}, log)
	model := llm.New(llm.Options{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, log)
	return extract.NewService(fetcher, model, log), cfg, log, nil
}

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
