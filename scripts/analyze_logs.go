package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors        int
	OrdersCreated      int
	OrdersUpdated      int
	OrdersDeleted      int
	PaymentsInitiated  int
	PaidOrderConflicts int
	ValidationFailures int
	ErrorPatterns      map[string]int
}

func main() {
	// Log files are rotated daily by the server's logger
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		ErrorPatterns: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "Rejected update of paid order") ||
			strings.Contains(line, "Rejected deletion of paid order") {
			stats.PaidOrderConflicts++
		}

		if strings.Contains(line, "failed validation") {
			stats.ValidationFailures++
		}

		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.Contains(line, "created with"):
			stats.OrdersCreated++
		case strings.Contains(line, "updated, total"):
			stats.OrdersUpdated++
		case strings.Contains(line, "deleted"):
			stats.OrdersDeleted++
		case strings.Contains(line, "initiated for order"):
			stats.PaymentsInitiated++
		}
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Keep only the leading error message as the pattern key
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Order Activity:")
	fmt.Printf("   Orders Created: %d\n", stats.OrdersCreated)
	fmt.Printf("   Orders Updated: %d\n", stats.OrdersUpdated)
	fmt.Printf("   Orders Deleted: %d\n", stats.OrdersDeleted)
	fmt.Printf("   Payments Initiated: %d\n", stats.PaymentsInitiated)

	fmt.Println("\n2. Rejections:")
	fmt.Printf("   Paid-Order Conflicts: %d\n", stats.PaidOrderConflicts)
	fmt.Printf("   Validation Failures: %d\n", stats.ValidationFailures)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n4. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
