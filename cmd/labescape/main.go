package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"labescape/internal/config"
	"labescape/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the TOML settings file")
	assetsDir := flag.String("assets", "", "model folder, overrides [paths] assets")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	if execPath, err := os.Executable(); err == nil {
		if dir, ok := workDir(execPath); ok {
			if err := os.Chdir(dir); err != nil {
				slog.Warn("staying in current directory", "dir", dir, "err", err)
			}
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *assetsDir != "" {
		cfg.Paths.Assets = *assetsDir
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := game.New(cfg).Run(); err != nil {
		slog.Error("exit", "err", err)
		os.Exit(1)
	}
}

// workDir returns the folder to run from for a binary at execPath. Binaries
// built by "go run" or "go test" live in a temp go-build folder and keep the
// caller's directory.
func workDir(execPath string) (string, bool) {
	dir := filepath.Dir(execPath)
	if strings.Contains(dir, "go-build") {
		return "", false
	}
	return dir, true
}
