package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/writ/conformance"
)

func runCall(cmd *cobra.Command, opts *options, funcName string, rawArgs []string) (err error) {
	if opts.batch != "" && len(rawArgs) > 0 {
		return fmt.Errorf("batch input (-b) may not be specified with in-line input")
	}
	if opts.batch != "" && opts.expect != "" {
		return fmt.Errorf("batch input (-b) may not be specified with an expected result (-e)")
	}

	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.close(); err == nil {
			err = cerr
		}
	}()

	exp, err := a.registry.Lookup(funcName)
	if err != nil {
		return err
	}

	var calls [][]any
	if opts.batch != "" {
		if calls, err = conformance.LoadBatchFile(opts.batch); err != nil {
			return err
		}
	} else {
		args, err := parseArgs(rawArgs)
		if err != nil {
			return err
		}
		calls = [][]any{args}
	}

	var expect any
	if opts.expect != "" {
		if expect, err = decodeJSON(opts.expect); err != nil {
			return fmt.Errorf("expected result: %w", err)
		}
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	for i, args := range calls {
		result, err := a.registry.Call(ctx, exp, args...)
		if err != nil {
			if len(calls) > 1 {
				return fmt.Errorf("call %d: %w", i, err)
			}
			return err
		}
		if opts.verbose {
			spew.Fdump(cmd.ErrOrStderr(), result)
		}
		if !opts.quiet {
			if err := writeJSON(out, result); err != nil {
				return err
			}
		}
		if opts.expect != "" {
			ok, err := conformance.Match(expect, result)
			if err != nil {
				return err
			}
			if !ok {
				a.logger.Debug("expectation failed", zap.String("export", exp.QualifiedName()))
				return &exitCodeError{
					code: exitMismatch,
					err:  fmt.Errorf("result does not match expected %s", opts.expect),
				}
			}
		}
	}
	return nil
}

// parseArgs decodes each in-line argument as a JSON document.
func parseArgs(raw []string) ([]any, error) {
	args := make([]any, len(raw))
	for i, s := range raw {
		v, err := decodeJSON(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args[i] = v
	}
	return args, nil
}

// decodeJSON decodes one JSON document, keeping numbers as json.Number.
func decodeJSON(s string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON %q: %w", s, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON %q: trailing data", s)
	}
	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
