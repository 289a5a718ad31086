package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ksemonis/advisor/pkg/domain"
	"github.com/ksemonis/advisor/pkg/scrape"
)

func main() {
	var (
		url      = flag.String("url", "", "Catalog page URL to scrape")
		inFile   = flag.String("in", "", "Local catalog HTML file to parse instead of fetching")
		outFile  = flag.String("out", "", "Output course data file (default: stdout)")
		showHelp = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ncatalogscrape extracts course records from a catalog web page and\n")
		fmt.Fprintf(os.Stderr, "writes them in the course data format the advisor loader reads.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -url https://catalog.example.edu/cs -out courses.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -in catalog.html\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if (*url == "") == (*inFile == "") {
		log.Fatal("exactly one of -url or -in is required")
	}

	var (
		courses []domain.Course
		err     error
	)
	if *url != "" {
		log.Printf("INFO: Fetching catalog page: %s", *url)
		courses, err = scrape.ExtractURL(*url)
	} else {
		var file *os.File
		file, err = os.Open(*inFile)
		if err == nil {
			defer file.Close()
			courses, err = scrape.Extract(file)
		}
	}
	if err != nil {
		log.Fatalf("Scrape failed: %v", err)
	}
	if len(courses) == 0 {
		log.Fatal("No course rows found in catalog page")
	}

	out := os.Stdout
	if *outFile != "" {
		out, err = os.Create(*outFile)
		if err != nil {
			log.Fatalf("Could not create output file: %v", err)
		}
		defer out.Close()
	}

	if err := scrape.WriteData(out, courses); err != nil {
		log.Fatalf("Could not write course data: %v", err)
	}
	log.Printf("INFO: Wrote %d courses", len(courses))
}
