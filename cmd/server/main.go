package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"decision-toolkit/internal/api"
	"decision-toolkit/internal/framework"
)

func main() {
	baseDir, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("determine working directory: %v", err)
	}

	dataDir := filepath.Join(baseDir, "data")
	if override := strings.TrimSpace(os.Getenv("DECISION_DATA_DIR")); override != "" {
		dataDir = override
	}

	var allowedOrigins []string
	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	cfg := api.Config{
		DataDir:        dataDir,
		AllowedOrigins: allowedOrigins,
	}

	server, err := api.NewServer(cfg, framework.NewRegistry())
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	logrus.WithFields(logrus.Fields{
		"data_dir": dataDir,
		"port":     port,
	}).Info("starting decision toolkit backend")
	if err := server.Router().Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
