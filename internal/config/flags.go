// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	Demo           *bool
	LogLevel       *string
	LogFilePath    *string
	Capacity       *int
	FontSize       *int
	Clipboard      *bool
}

// DefineFlags sets up the command-line flags and associates them with the
// Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.Demo = flag.Bool("demo", false, "Run the scripted demo session and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.Capacity = flag.Int("capacity", 0, "Maximum retained history snapshots - Overrides config file")
	f.FontSize = flag.Int("fontsize", 0, "Initial font size - Overrides config file")
	f.Clipboard = flag.Bool("system-clipboard", false, "Enable copy/paste against the system clipboard")
}

// ParseFlags parses the defined command-line flags into the Flags struct.
// It returns the remaining non-flag arguments.
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if* they
// were set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil {
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "capacity":
			if f.Capacity != nil && *f.Capacity > 0 {
				cfg.Editor.HistoryCapacity = *f.Capacity
			}
		case "fontsize":
			if f.FontSize != nil && *f.FontSize > 0 {
				cfg.Editor.FontSize = *f.FontSize
			}
		case "system-clipboard":
			if f.Clipboard != nil {
				cfg.Editor.SystemClipboard = *f.Clipboard
			}
		}
	})
}
