package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/programme-lv/console/conf"
	"github.com/programme-lv/console/logger"
	"github.com/programme-lv/console/msclient"
	"github.com/programme-lv/console/ojclient"
	"github.com/programme-lv/console/session"
)

func main() {
	// .env is optional for the console, unlike the backend
	_ = godotenv.Load()

	cfgPath := flag.String("config", defaultConfigPath(), "path to console.toml")
	importDir := flag.String("import", "", "import a task directory and exit")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	cfg, err := conf.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// the TUI owns the terminal; logs go to a file next to the config
	logPath := filepath.Join(filepath.Dir(*cfgPath), "console.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger.NewCLI(logFile, *verbose))

	sess := session.New()
	httpc := &http.Client{Timeout: time.Duration(cfg.API.TimeoutMs) * time.Millisecond}
	oj := ojclient.New(cfg.API.BaseURL, sess, ojclient.WithHTTPClient(httpc))
	ms := msclient.New(cfg.API.MicroserviceURL, sess, msclient.WithHTTPClient(httpc))

	if *importDir != "" {
		if err := runImport(*importDir, oj, ms, sess); err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(initialModel(cfg, sess, oj, ms))
	program = p
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// program lets request goroutines push messages into the update loop.
var program *tea.Program

func send(msg tea.Msg) {
	if program != nil {
		program.Send(msg)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "console.toml"
	}
	return filepath.Join(home, ".config", "proglv", "console.toml")
}
