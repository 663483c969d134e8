package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/config"
	"tableflip.dev/folio/pkg/logging"
)

// LogOptions overrides the log config keys.
type LogOptions struct {
	Level string
	File  string
}

// AddLogArgs registers --log-level and --log-file.
func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVar(&o.Level, "log-level", "",
		"Log level: debug, info, warn or error.")
	cmd.Flags().StringVar(&o.File, "log-file", "",
		"Write logs to this file.")
}

// Logging merges the flags over cfg.
func (o *LogOptions) Logging(cfg *config.Config) logging.Options {
	opts := logging.Options{}
	if cfg != nil {
		opts.Level = cfg.LogLevel
		opts.File = cfg.LogFile
	}
	if o.Level != "" {
		opts.Level = o.Level
	}
	if o.File != "" {
		opts.File = o.File
	}
	return opts
}
