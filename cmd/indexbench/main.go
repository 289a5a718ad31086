// indexbench compares the unbalanced BST against the balanced index
// under sorted and shuffled course-number loads, writing per-operation
// latencies to a CSV file and a lookup-latency chart to a PNG.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ksemonis/advisor/pkg/domain"
	"github.com/ksemonis/advisor/pkg/indexing"
)

type result struct {
	structure  string
	workload   string
	scale      int
	insertNsOp int64
	lookupNsOp int64
}

func main() {
	var (
		csvFile = flag.String("csv", "indexbench_results.csv", "CSV results file")
		pngFile = flag.String("png", "indexbench_lookup.png", "Lookup latency chart file")
		seed    = flag.Int64("seed", 42, "Shuffle seed")
	)
	flag.Parse()

	scales := []int{1000, 2000, 5000, 10000, 20000}
	structures := []struct {
		name string
		new  func() domain.CourseIndex
	}{
		{"BST", func() domain.CourseIndex { return indexing.NewBST() }},
		{"Balanced", func() domain.CourseIndex { return indexing.NewBalanced() }},
	}
	workloads := []string{"sorted", "shuffled"}

	var results []result
	for _, s := range structures {
		for _, workload := range workloads {
			for _, scale := range scales {
				r := runSuite(s.name, workload, scale, *seed, s.new)
				results = append(results, r)
				fmt.Printf("%-8s %-8s n=%-6d insert %6d ns/op  lookup %6d ns/op\n",
					r.structure, r.workload, r.scale, r.insertNsOp, r.lookupNsOp)
			}
		}
	}

	if err := writeCSV(*csvFile, results); err != nil {
		log.Fatalf("Could not write results: %v", err)
	}
	if err := writeChart(*pngFile, scales, results); err != nil {
		log.Fatalf("Could not write chart: %v", err)
	}
	fmt.Println("Benchmark complete.")
}

func runSuite(structure, workload string, n int, seed int64, newIndex func() domain.CourseIndex) result {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("CS%06d", i)
	}
	if workload == "shuffled" {
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	}

	idx := newIndex()

	// 1. Pure insert (initial load)
	start := time.Now()
	for _, k := range keys {
		idx.Insert(domain.Course{Number: k, Title: "Course " + k})
	}
	insertNsOp := time.Since(start).Nanoseconds() / int64(n)

	// 2. Exact-match lookups over every key
	start = time.Now()
	for _, k := range keys {
		if idx.Lookup(k) == nil {
			log.Fatalf("%s lost key %s", structure, k)
		}
	}
	lookupNsOp := time.Since(start).Nanoseconds() / int64(n)

	return result{
		structure:  structure,
		workload:   workload,
		scale:      n,
		insertNsOp: insertNsOp,
		lookupNsOp: lookupNsOp,
	}
}

func writeCSV(filename string, results []result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"Structure", "Workload", "Scale", "InsertNsPerOp", "LookupNsPerOp"})
	for _, r := range results {
		w.Write([]string{
			r.structure,
			r.workload,
			strconv.Itoa(r.scale),
			strconv.FormatInt(r.insertNsOp, 10),
			strconv.FormatInt(r.lookupNsOp, 10),
		})
	}
	w.Flush()
	return w.Error()
}

func writeChart(filename string, scales []int, results []result) error {
	p := plot.New()
	p.Title.Text = "Exact-match lookup latency"
	p.X.Label.Text = "Courses"
	p.Y.Label.Text = "ns/op"

	series := make(map[string]plotter.XYs)
	for _, r := range results {
		name := r.structure + "/" + r.workload
		series[name] = append(series[name], plotter.XY{X: float64(r.scale), Y: float64(r.lookupNsOp)})
	}

	var lines []interface{}
	for _, name := range []string{"BST/sorted", "BST/shuffled", "Balanced/sorted", "Balanced/shuffled"} {
		lines = append(lines, name, series[name])
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
