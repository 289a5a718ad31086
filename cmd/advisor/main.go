package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ksemonis/advisor/pkg/catalog"
	"github.com/ksemonis/advisor/pkg/domain"
)

func main() {
	// Command line flags
	var (
		dataFile = flag.String("data", "", "Course data file to load at startup")
		balanced = flag.Bool("balanced", false, "Use the self-balancing index instead of the BST")
		showHelp = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nadvisor is an interactive course catalog browser.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Start with an empty catalog\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -data courses.txt        # Preload a course data file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -balanced                # Balanced index for large sorted files\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	var options []catalog.Option
	if *balanced {
		options = append(options, catalog.WithBalancedIndex())
	}
	cat := catalog.New(options...)

	if *dataFile != "" {
		if _, err := cat.Load(*dataFile); err != nil {
			log.Printf("ERROR: Could not preload course data from %s: %v", *dataFile, err)
		}
	}

	run(cat, bufio.NewScanner(os.Stdin), os.Stdout)
}

// run drives the menu loop until the user exits or input ends.
func run(cat *catalog.Catalog, in *bufio.Scanner, out io.Writer) {
	for {
		printMenu(out)
		fmt.Fprint(out, "Enter your choice: ")
		if !in.Scan() {
			return
		}

		switch strings.TrimSpace(in.Text()) {
		case "1":
			fmt.Fprint(out, "Enter the filename containing course data: ")
			if !in.Scan() {
				return
			}
			filename := strings.TrimSpace(in.Text())
			if _, err := cat.Load(filename); err != nil {
				fmt.Fprintln(out, "Failed to load course data.")
				continue
			}
			fmt.Fprintln(out, "Course data loaded successfully.")

		case "2":
			if !cat.Loaded() {
				fmt.Fprintln(out, "Error: No data loaded.")
				continue
			}
			fmt.Fprintln(out, "Courses in alphanumeric order:")
			for _, course := range cat.All() {
				fmt.Fprintf(out, "%s: %s\n", course.Number, course.Title)
				printPrerequisites(out, course)
			}

		case "3":
			if !cat.Loaded() {
				fmt.Fprintln(out, "Error: No data loaded.")
				continue
			}
			fmt.Fprint(out, "Enter the course number: ")
			if !in.Scan() {
				return
			}
			number := strings.TrimSpace(in.Text())
			course, ok := cat.Find(number)
			if !ok {
				fmt.Fprintln(out, "Course not found.")
				continue
			}
			fmt.Fprintf(out, "Course Number: %s\n", course.Number)
			fmt.Fprintf(out, "Course Title: %s\n", course.Title)
			printPrerequisites(out, course)

		case "9":
			fmt.Fprintln(out, "Exiting program.")
			return

		default:
			fmt.Fprintln(out, "Invalid choice. Please select a valid option.")
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "Menu:")
	fmt.Fprintln(out, "1. Load course data")
	fmt.Fprintln(out, "2. Print alphanumeric list of all courses")
	fmt.Fprintln(out, "3. Print course details")
	fmt.Fprintln(out, "9. Exit")
}

func printPrerequisites(out io.Writer, course domain.Course) {
	if len(course.Prerequisites) == 0 {
		fmt.Fprintln(out, "Prerequisites: None")
		return
	}
	fmt.Fprintf(out, "Prerequisites: %s\n", strings.Join(course.Prerequisites, " "))
}
