package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"torrview/internal/browser"
	"torrview/internal/config"
	"torrview/internal/feed"
	"torrview/internal/ui"
	"torrview/internal/watermark"
)

func main() {
	var (
		query      string
		page       int
		configPath string
	)
	flag.StringVar(&query, "q", "", "Initial search query")
	flag.IntVar(&page, "p", feed.FirstPage, "Initial result page")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	// Set up logging; the TUI owns stdout
	logFile, err := os.OpenFile("torrview.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	var configSvc config.Service
	if configPath != "" {
		configSvc = config.NewServiceWithPath(configPath)
	} else {
		configSvc = config.NewService()
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Viewed watermark store
	watermarkPath := cfg.WatermarkPath
	if watermarkPath == "" {
		watermarkPath = watermark.DefaultPath()
	}
	store := watermark.NewFileStore(watermarkPath)

	// Search client
	client := feed.NewHTTPClient(cfg.BaseURL, time.Duration(cfg.RequestTimeoutSecs)*time.Second)

	// Initial params from flags
	params := feed.NewParams()
	params.SetQuery(query)
	if page > feed.FirstPage {
		params.Page = page
		if params.Page > feed.MaxPage {
			params.Page = feed.MaxPage
		}
	}

	model := ui.NewModel(cfg, client, store, browser.ExecOpener{}, params)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
