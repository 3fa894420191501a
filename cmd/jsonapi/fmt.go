package main

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/jsonapi"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/internal/ordered"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Formats the jsonapi document.",
	Long: `Reads the jsonapi document from the file or the standard input and writes it
with the members in the canonical order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}
		in, err := input(cmd, path)
		if err != nil {
			return err
		}
		defer in.Close()

		compact, _ := cmd.Flags().GetBool("compact")
		indent := cfg.Encoder.Indent
		if compact {
			indent = ""
		}
		return formatDocument(in, cmd.OutOrStdout(), cfg.Decoder.Strict, indent)
	},
}

func init() {
	fmtCmd.Flags().Bool("compact", false, "writes the document without the indentation")
}

// formatDocument decodes the document from 'in' and writes it into 'out' in the canonical
// member order. The empty 'indent' writes the compact document.
func formatDocument(in io.Reader, out io.Writer, strict bool, indent string) error {
	doc, err := jsonapi.Decode(in, strict)
	if err != nil {
		return err
	}
	data, err := ordered.Marshal(doc)
	if err != nil {
		return errors.Newf(class.EncodingOutput, "marshaling document failed: %v", err)
	}
	if indent != "" {
		buf := &bytes.Buffer{}
		if err = json.Indent(buf, data, "", indent); err != nil {
			return errors.Newf(class.EncodingOutput, "indenting document failed: %v", err)
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')
	_, err = out.Write(data)
	return err
}
