package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/api"
	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/db"
	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/logger"
	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/oracle"
)

var version = "dev"

func main() {
	port := flag.Int("port", 13370, "HTTP server port")
	flag.Parse()

	logger.Banner(version)

	// Open SQLite database
	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	// Load config from SQLite
	cfg := database.LoadConfig()

	// The auction endpoints work without a key; one raises the rate limit.
	client := hypixel.NewClient(os.Getenv("HYPIXEL_API_KEY"))

	var oracleClient *oracle.Client
	if os.Getenv("OPENAI_API_KEY") != "" {
		oracleClient = oracle.NewClient()
		logger.Success("Oracle", "Recipe oracle configured")
	} else {
		logger.Warn("Oracle", "OPENAI_API_KEY not set, craft scans and appraisals disabled")
	}

	srv := api.NewServer(cfg, client, database, oracleClient)

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}
