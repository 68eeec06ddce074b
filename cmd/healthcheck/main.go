// main.go
//
// Container healthcheck for the docservice backend. Probes the HTTP port
// and the database, prints the report, and exits nonzero on failure.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/contractdocs/docservice/internal/config"
	"github.com/contractdocs/docservice/internal/database"
	"github.com/contractdocs/docservice/internal/services"
	"github.com/contractdocs/docservice/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Check the HTTP listener first
	serverURL := fmt.Sprintf("http://localhost:%s", cfg.Port)
	if err := utils.PingService(serverURL, 1500*time.Millisecond); err != nil {
		log.Printf("Server unreachable: %v", err)
		os.Exit(1)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(cfg, db)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
