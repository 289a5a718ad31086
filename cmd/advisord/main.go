package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ksemonis/advisor/pkg/catalog"
	"github.com/ksemonis/advisor/pkg/server"
)

func main() {
	// Command line flags
	var (
		port     = flag.String("port", "8080", "Server port")
		dataFile = flag.String("data", "", "Course data file to preload")
		balanced = flag.Bool("balanced", false, "Use the self-balancing index instead of the BST")
		showHelp = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nadvisord serves an in-memory course catalog over HTTP.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Start empty; load via POST /catalog/load\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090 -data courses.txt     # Custom port with preloaded data\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nNote:\n")
		fmt.Fprintf(os.Stderr, "  The catalog lives in memory only; each load replaces it and nothing\n")
		fmt.Fprintf(os.Stderr, "  survives the process.\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Build catalog options based on flags
	var options []catalog.Option
	if *balanced {
		options = append(options, catalog.WithBalancedIndex())
		log.Printf("INFO: Using self-balancing index")
	}

	// Create a new server with catalog options
	srv := server.NewServer(options...)

	// Preload course data if requested
	if *dataFile != "" {
		log.Printf("INFO: Preloading course data from: %s", *dataFile)
		srv.Preload(*dataFile)
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:    ":" + *port,
		Handler: srv.Router(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting advisord server on :%s", *port)
		log.Printf("API endpoints available at http://localhost:%s", *port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
