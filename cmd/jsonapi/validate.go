package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/neuronlabs/jsonapi"
	"github.com/neuronlabs/jsonapi/errors"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validates the jsonapi documents.",
	Long: `Decodes the jsonapi documents from the files or the standard input and reports
the invalid ones with their error classification.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		strict = strict || cfg.Decoder.Strict
		if len(args) == 0 {
			args = []string{"-"}
		}

		var failed int
		for _, path := range args {
			in, err := input(cmd, path)
			if err != nil {
				return err
			}
			if !validateDocument(in, cmd.OutOrStdout(), path, strict) {
				failed++
			}
			in.Close()
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d documents are invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolP("strict", "s", false, "fails on the unknown document members")
}

// validateDocument decodes the document from 'in' and writes the result into 'out'.
func validateDocument(in io.Reader, out io.Writer, name string, strict bool) bool {
	doc, err := jsonapi.Decode(in, strict)
	if err != nil {
		red := color.New(color.FgRed, color.Bold)
		red.Fprintf(out, "FAIL %s\n", name)
		if classified, ok := err.(*errors.Error); ok {
			color.New(color.FgYellow).Fprintf(out, "   class: %s\n", classified.Class())
			if classified.Path != "" {
				color.New(color.FgYellow).Fprintf(out, "   path:  %s\n", classified.Path)
			}
		}
		color.New(color.FgRed).Fprintf(out, "   %v\n", err)
		return false
	}
	logger.Debugf("Document: '%s' is valid", name)

	var summary string
	switch {
	case doc.Errors != nil:
		summary = fmt.Sprintf("%d errors", len(doc.Errors))
	case doc.IsNull:
		summary = "null data"
	case doc.HasData:
		summary = fmt.Sprintf("%d resources, %d included", len(doc.Data), len(doc.Included))
	default:
		summary = "meta only"
	}
	color.New(color.FgGreen).Fprintf(out, "OK   %s (%s)\n", name, summary)
	return true
}
