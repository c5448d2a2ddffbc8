package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/skemawire/codec"
	"github.com/reoring/skemawire/format"
	"github.com/reoring/skemawire/i18n"
	"github.com/reoring/skemawire/internal/config"
	"github.com/reoring/skemawire/internal/observability"
	"github.com/reoring/skemawire/marshal"
	"github.com/reoring/skemawire/model"
	"github.com/reoring/skemawire/schema"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:          "skemawire",
		Short:        "Marshal documents into their wire form using a schema",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default ./skemawire.yaml)")

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "List registered formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFormats(cmd.OutOrStdout(), format.NewRegistry())
		},
	}

	var (
		schemaPath string
		inputPath  string
		output     string
		strict     bool
	)
	marshalCmd := &cobra.Command{
		Use:   "marshal",
		Short: "Marshal a JSON document against a schema node",
		Long: `Loads a schema node (YAML or JSON, chosen by file extension), decodes the
JSON input keeping key order, converts it to its wire form and writes the
encoded result to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Output
			}
			logger, closer, err := observability.SetupLogger(cfg.Log)
			if err != nil {
				return fmt.Errorf("setup logger: %w", err)
			}
			defer closer.Close()
			defer func() { _ = logger.Sync() }()
			i18n.SetLanguage(cfg.Language)

			in := cmd.InOrStdin()
			if inputPath != "" && inputPath != "-" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runMarshal(cmd.OutOrStdout(), in, schemaPath, output, strict, logger)
		},
	}
	marshalCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema node file (.yaml, .yml or .json)")
	marshalCmd.Flags().StringVarP(&inputPath, "input", "i", "-", "JSON input file, - for stdin")
	marshalCmd.Flags().StringVarP(&output, "output", "o", "", "output codec: json, json-indent, yaml, cbor")
	marshalCmd.Flags().BoolVar(&strict, "strict", false, "reject duplicate keys in the input")
	_ = marshalCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(formatsCmd, marshalCmd)
	return rootCmd
}

func printFormats(w io.Writer, reg *format.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, name := range reg.Names() {
		desc, _ := reg.Describe(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, desc)
	}
	return tw.Flush()
}

func runMarshal(w io.Writer, in io.Reader, schemaPath, output string, strict bool, logger *zap.Logger) error {
	c, err := codec.ByName(output)
	if err != nil {
		return err
	}
	s, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}
	var opts []codec.DecodeOption
	if strict {
		opts = append(opts, codec.RejectDuplicateKeys())
	}
	doc, err := codec.DecodeJSON(in, opts...)
	if err != nil {
		return err
	}

	m := marshal.New(
		format.NewRegistry(format.WithLogger(logger)),
		model.NewRegistry(),
		marshal.WithLogger(logger),
	)
	wire, err := m.Marshal(s, doc)
	if err != nil {
		return err
	}
	b, err := c.Marshal(wire)
	if err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	if c.ContentType() == "application/json" {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
