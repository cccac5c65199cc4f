// Command switrs-to-sqlite converts the three SWITRS record files into a
// SQLite database.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nao1215/switrs"
	"github.com/nao1215/switrs/internal/config"
	"github.com/nao1215/switrs/internal/logging"
)

// version is the release of the record layouts this tool reads
const version = "4.6.0"

type options struct {
	configPath     string
	envFile        string
	outputFile     string
	parseError     string
	chunkSize      int
	logLevel       string
	manifest       bool
	metricsPushURL string
	only           []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "switrs-to-sqlite [flags] COLLISION_FILE PARTY_FILE VICTIM_FILE",
		Short: "Convert SWITRS text files to a SQLite3 database",
		Long: `switrs-to-sqlite reads the CollisionRecords, PartyRecords and VictimRecords
files of a SWITRS export (plain or compressed with gzip, bzip2, xz or zstd)
and writes them to the collisions, parties and victims tables of a SQLite3
database.`,
		Args:         cobra.ExactArgs(3),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	cmd.Flags().StringVarP(&opts.outputFile, "output-file", "o", switrs.DefaultOutputFile, "file to save the database to")
	cmd.Flags().StringVarP(&opts.parseError, "parse-error", "p", switrs.ParseErrorStrict.String(),
		"how to handle unicode decoding errors in input files: "+
			"'strict' raises an error (default), "+
			"'ignore' skips invalid characters, "+
			"'replace' substitutes a replacement character")
	cmd.Flags().IntVar(&opts.chunkSize, "chunk-size", switrs.DefaultChunkSize, "rows per insert batch")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with SWITRS_* variables")
	cmd.Flags().BoolVar(&opts.manifest, "manifest", false, "record loaded files in the switrs_loads table")
	cmd.Flags().StringVar(&opts.metricsPushURL, "metrics-push-url", "", "Prometheus Pushgateway URL")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil,
		"load only these record types (collisions, parties, victims); the other files are not read")

	return cmd
}

// run loads settings with precedence defaults < config file < environment < flags
// and performs the load.
func run(cmd *cobra.Command, opts *options, args []string, stderr io.Writer) error {
	envLoaded, err := config.LoadEnvFile(opts.envFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.Setup(cfg.LogLevel, stderr)
	if envLoaded {
		logger.WithField("file", opts.envFile).Debug("loaded environment file")
	}

	mode, err := cfg.ParseErrorMode()
	if err != nil {
		return err
	}
	metrics, err := switrs.NewMetrics(cfg.Metrics.PushURL, cfg.Metrics.Job)
	if err != nil {
		return err
	}

	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}

	builder := switrs.NewBuilder().
		SetOutputFile(cfg.OutputFile).
		SetChunkSize(cfg.ChunkSize).
		SetParseErrorMode(mode).
		SetLogger(logger).
		SetMetrics(metrics)
	// positional arguments follow load order
	for _, kind := range kinds {
		builder.AddPath(kind, args[kind])
	}
	if cfg.Manifest {
		builder.EnableManifest()
	}

	ctx := cmd.Context()
	loader, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	summary, err := loader.Run(ctx)
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(summary.Tables))
	for _, t := range summary.Tables {
		tables = append(tables, t.Table)
	}
	logger.WithFields(logrus.Fields{
		"run_id":   summary.RunID,
		"output":   summary.OutputFile,
		"tables":   strings.Join(tables, ","),
		"duration": summary.Duration.String(),
	}).Info("conversion finished")
	for _, e := range summary.Manifest {
		logger.WithFields(logrus.Fields{
			"table": e.TableName,
			"file":  e.File,
			"xxh3":  e.Hash,
			"rows":  e.Rows,
		}).Debug("manifest entry")
	}
	return nil
}

// applyFlags copies explicitly set flags over cfg
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output-file") {
		cfg.OutputFile = opts.outputFile
	}
	if flags.Changed("parse-error") {
		cfg.ParseError = opts.parseError
	}
	if flags.Changed("chunk-size") {
		cfg.ChunkSize = opts.chunkSize
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("manifest") {
		cfg.Manifest = opts.manifest
	}
	if flags.Changed("metrics-push-url") {
		cfg.Metrics.PushURL = opts.metricsPushURL
	}
	if flags.Changed("only") {
		cfg.Only = opts.only
	}
}
