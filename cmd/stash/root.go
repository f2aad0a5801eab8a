package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/stash"
	"github.com/schmitthub/stash/internal/basedir"
	"github.com/schmitthub/stash/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:          "stash",
		Short:        "Inspect stash persistence locations and formats",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.Init(debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newDirsCmd())
	cmd.AddCommand(newRenderCmd())
	return cmd
}

// newDirsCmd prints the roots an identity resolves to. It only resolves —
// nothing is created on disk.
func newDirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirs <organization> <application>",
		Short: "Print the resolved settings and data roots for an identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgRoot, err := basedir.ConfigRoot()
			if err != nil {
				return err
			}
			dataRoot, err := basedir.DataRoot()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "settings: %s\n", basedir.Join(cfgRoot, args[0], args[1]))
			fmt.Fprintf(cmd.OutOrStdout(), "data:     %s\n", basedir.Join(dataRoot, args[0], args[1]))
			return nil
		},
	}
}

// sampleDoc is the document rendered by the render command.
type sampleDoc struct {
	Name     string            `toml:"name" yaml:"name" json:"name"`
	Attempts int               `toml:"attempts" yaml:"attempts" json:"attempts"`
	Force    bool              `toml:"force" yaml:"force" json:"force"`
	Labels   map[string]string `toml:"labels" yaml:"labels" json:"labels"`
}

func newRenderCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Encode a sample document with one of the registered codecs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			codec, ok := stash.CodecByName(format)
			if !ok {
				return fmt.Errorf("unknown format %q (toml, yaml or json)", format)
			}
			doc := sampleDoc{
				Name:     "Foobar",
				Attempts: 3,
				Labels:   map[string]string{"a": "1", "b": "2"},
			}
			data, err := codec.Marshal(doc)
			if err != nil {
				return err
			}
			logger.Debug().Str("codec", codec.Name()).Int("bytes", len(data)).Msg("rendered sample")
			fmt.Fprintf(cmd.OutOrStdout(), "%s", data)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, yaml or json")
	return cmd
}
