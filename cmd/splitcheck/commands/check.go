package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/splitkit/pkg/api"
	"github.com/dmitrymomot/splitkit/pkg/entry"
	"github.com/dmitrymomot/splitkit/pkg/validator"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type checkFunc func(ctx context.Context, r io.Reader, f entry.Format) error

// checkRecord decodes a T and validates it.
func checkRecord[T any](a *app, validate func(*entry.Validator, context.Context, T) error) checkFunc {
	return func(ctx context.Context, r io.Reader, f entry.Format) error {
		rec, err := entry.Decode[T](r, f)
		if err != nil {
			return err
		}
		return validate(a.validator, ctx, rec)
	}
}

func checkCmd(a *app, kind, short string, check checkFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			in, format, err := open(path, a.format, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			verdict := check(cmd.Context(), in, format)
			if verdict != nil && !validator.IsValidationError(verdict) {
				return fmt.Errorf("%s: %w", path, verdict)
			}
			return a.report(cmd.Context(), cmd.OutOrStdout(), path, verdict)
		},
	}
	cmd.Flags().StringVarP(&a.format, "format", "f", "", "input format: json or yaml (default from extension, json for stdin)")
	cmd.Flags().StringVarP(&a.output, "output", "o", outputText, "output format: text or json")
	return cmd
}

func open(path, format string, stdin io.Reader) (io.ReadCloser, entry.Format, error) {
	var f entry.Format
	switch {
	case format != "":
		f = entry.Format(format)
	case path == "-":
		f = entry.FormatJSON
	default:
		var err error
		if f, err = entry.FormatFromPath(path); err != nil {
			return nil, "", err
		}
	}

	if path == "-" {
		return io.NopCloser(stdin), f, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return file, f, nil
}

func (a *app) report(ctx context.Context, w io.Writer, path string, verdict error) error {
	msgs := entry.Localize(ctx, a.translator, a.lang, verdict)

	switch a.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(api.Verdict{Valid: verdict == nil, Errors: msgs}); err != nil {
			return err
		}
	case outputText:
		if verdict == nil {
			fmt.Fprintf(w, "%s: ok\n", path)
		}
		for _, m := range msgs {
			fmt.Fprintf(w, "%s: %s: %s [%s]\n", path, m.Field, m.Text, m.Reason)
		}
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}

	if verdict != nil {
		return ErrRejected
	}
	return nil
}
