// Package scrape extracts course records from catalog web pages and
// emits them in the comma-delimited course data format the loader
// reads.
package scrape

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ksemonis/advisor/pkg/domain"
)

// Extract parses catalog markup and returns one course per
// "tr.course" row. Each row carries a "td.number" and "td.title" cell,
// plus an optional "td.requisites" cell listing prerequisite course
// numbers. Rows missing number or title are skipped.
func Extract(r io.Reader) ([]domain.Course, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog page: %w", err)
	}

	var courses []domain.Course
	document.Find("tr.course").Each(func(_ int, row *goquery.Selection) {
		number := strings.TrimSpace(row.Find("td.number").Text())
		title := strings.TrimSpace(row.Find("td.title").Text())
		if number == "" || title == "" {
			return
		}
		requisites := splitRequisites(row.Find("td.requisites").Text())
		courses = append(courses, domain.NewCourse(number, title, requisites))
	})
	return courses, nil
}

// ExtractURL fetches the catalog page and extracts its courses.
func ExtractURL(url string) ([]domain.Course, error) {
	request, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog page returned %s", response.Status)
	}
	return Extract(response.Body)
}

// splitRequisites turns a human-readable requisite phrase ("CS200 and
// MATH201", "CS100, CS150") into individual course numbers.
func splitRequisites(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, "none") {
		return nil
	}

	replacer := strings.NewReplacer(" and ", ",", " or ", ",", ";", ",")
	var requisites []string
	for _, part := range strings.Split(replacer.Replace(text), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			requisites = append(requisites, part)
		}
	}
	return requisites
}

// WriteData writes courses as loader-format lines:
// number,title[,prerequisite]*
func WriteData(w io.Writer, courses []domain.Course) error {
	for _, course := range courses {
		fields := append([]string{course.Number, course.Title}, course.Prerequisites...)
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("failed to write course data: %w", err)
		}
	}
	return nil
}
