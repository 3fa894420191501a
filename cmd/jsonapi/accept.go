package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/neuronlabs/jsonapi"
	"github.com/neuronlabs/jsonapi/headers"
)

var acceptCmd = &cobra.Command{
	Use:   "accept <header>",
	Short: "Lists the Accept header media types by preference.",
	Long: `Parses the HTTP Accept header value and lists its media types sorted by preference.
The media types the jsonapi media type matches to are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeAccept(cmd.OutOrStdout(), args[0])
	},
}

// writeAccept writes the sorted media types of the Accept 'header' into 'out'.
func writeAccept(out io.Writer, header string) error {
	accepts, err := headers.ParseAcceptHeader(header)
	if err != nil {
		return err
	}
	mediaType, err := headers.ParseMediaType(jsonapi.MediaType)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen, color.Bold)
	for _, accept := range accepts {
		line := fmt.Sprintf("%-3d q=%.3f %s\n", accept.Position, accept.Quality, accept.String())
		if accept.Quality > 0 && mediaType.MatchesTo(&accept.MediaType) {
			green.Fprint(out, line)
		} else {
			fmt.Fprint(out, line)
		}
	}

	if match, ok := accepts.Match(mediaType); ok {
		green.Fprintf(out, "jsonapi media type accepted by: %s\n", match.String())
		return nil
	}
	color.New(color.FgRed).Fprintf(out, "jsonapi media type not accepted\n")
	return nil
}
