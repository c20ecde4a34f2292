package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/server/core"
	"github.com/automoto/vantage-mp/shared/protocol"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config overlay (empty = defaults)")
	port := flag.Uint("port", 0, "Server port (overrides config)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate in updates per second (overrides config)")
	name := flag.String("name", "", "Server display name (overrides config)")
	version := flag.String("version", "", "Required client version (overrides config, empty = accept any)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Net.Port = *port
	}
	if *tickRate != 0 {
		cfg.Net.TickRate = *tickRate
	}
	if *name != "" {
		cfg.Net.ServerName = *name
	}
	if *version != "" {
		cfg.Net.Version = *version
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := core.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting %q on port %d (tick rate: %d/s, version: %q)",
		cfg.Net.ServerName, cfg.Net.Port, cfg.Net.TickRate, cfg.Net.Version)
	if err := server.Start(cfg.Net.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
