// cmd/quill/main.go
package main

import (
	"fmt"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/quill-editor/quill/internal/command"
	"github.com/quill-editor/quill/internal/config"
	"github.com/quill-editor/quill/internal/document"
	"github.com/quill-editor/quill/internal/event"
	"github.com/quill-editor/quill/internal/history"
	"github.com/quill-editor/quill/internal/logger"
	"github.com/quill-editor/quill/internal/repl"
)

const version = "0.1.0"

func main() {
	// --- Flag & Config Loading ---
	flags := &config.Flags{}
	flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logOutput := os.Stderr
	if path := cfg.Logger.LogFilePath; path != "" && path != "-" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", path, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(cfg.Logger.Level(), logOutput)

	logger.Infof("Starting %s...", config.AppName)
	logger.Debugf("History capacity: %d, font size: %d", cfg.Editor.HistoryCapacity, cfg.Editor.FontSize)

	// --- Wire the core ---
	events := event.NewManager()

	doc := document.NewWithFontSize(cfg.Editor.FontSize)
	doc.SetEventManager(events)

	ledger := history.NewLedger(cfg.Editor.HistoryCapacity)
	ledger.SetEventManager(events)

	invoker := command.NewInvoker()

	session := repl.New(doc, ledger, invoker, events, cfg.Editor, os.Stdin, os.Stdout)

	// --- Run ---
	if flags.Demo != nil && *flags.Demo {
		err = session.RunDemo()
	} else {
		err = session.Run()
	}
	if err != nil {
		logger.Errorf("Session exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
