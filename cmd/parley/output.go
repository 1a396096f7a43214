package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/parley/internal/session"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("--format must be text, json or yaml")
	}
}

// writeEncoded writes v as indented JSON or YAML.
func writeEncoded(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// writeResult prints a single boundary result. Text output uses render;
// a failed result is returned as an error after the structured payload is written.
func writeResult[T any](w io.Writer, format string, res session.Result[T], render func(io.Writer, T) error) error {
	if format != formatText {
		if err := writeEncoded(w, format, res); err != nil {
			return err
		}
		return res.Err()
	}
	if !res.OK() {
		return res.Err()
	}
	if err := render(w, res.Value); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// input is one transcript to analyse.
type input struct {
	Source string
	Text   string
}

// batchItem pairs a transcript source with its result.
type batchItem[T any] struct {
	Source string            `json:"source" yaml:"source"`
	Result session.Result[T] `json:"result" yaml:"result"`
}

// collectInputs resolves the transcripts from --text, file arguments or stdin.
func collectInputs(stdin io.Reader, text string, textSet bool, files []string) ([]input, error) {
	if textSet {
		if len(files) > 0 {
			return nil, fmt.Errorf("--text cannot be combined with file arguments")
		}
		return []input{{Source: "text", Text: text}}, nil
	}
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []input{{Source: "stdin", Text: string(data)}}, nil
	}
	inputs := make([]input, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read transcript: %w", err)
		}
		inputs = append(inputs, input{Source: path, Text: string(data)})
	}
	return inputs, nil
}

// runBatch applies fn to every input with at most parallel calls in flight.
// Results keep input order.
func runBatch[T any](ctx context.Context, inputs []input, parallel int, fn func(string) session.Result[T]) ([]batchItem[T], error) {
	if parallel < 1 {
		parallel = 1
	}
	items := make([]batchItem[T], len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = batchItem[T]{Source: in.Source, Result: fn(in.Text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// writeBatch prints batch results. A single input prints like writeResult.
func writeBatch[T any](w io.Writer, format string, items []batchItem[T], render func(io.Writer, T) error) error {
	if len(items) == 1 {
		return writeResult(w, format, items[0].Result, render)
	}
	failed := 0
	for _, item := range items {
		if !item.Result.OK() {
			failed++
		}
	}
	if format != formatText {
		if err := writeEncoded(w, format, items); err != nil {
			return err
		}
	} else {
		for i, item := range items {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			if _, err := fmt.Fprintf(w, "== %s ==\n", item.Source); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if !item.Result.OK() {
				if _, err := fmt.Fprintf(w, "error: %s\n", item.Result.Failure.Message); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				continue
			}
			if err := render(w, item.Result.Value); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failed, len(items))
	}
	return nil
}
