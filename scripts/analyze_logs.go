package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors      int
	CampaignsCreated int
	CampaignsUpdated int
	CampaignsDeleted int
	ProductsApplied  int
	ProductsRestored int
	SkippedProducts  int
	FailedCommits    int
	CampaignActivity map[string]int
	ErrorPatterns    map[string]int
}

func main() {
	// Get today's date for log file names
	today := time.Now().Format("2006-01-02")
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "./logs"
	}

	stats := &LogStats{
		CampaignActivity: make(map[string]int),
		ErrorPatterns:    make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)
	analyzeDebugLogs(filepath.Join(logDir, fmt.Sprintf("debug-%s.log", today)), stats)

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

		// Products deleted out of band show up as engine skips
		if strings.Contains(line, "not found while applying") ||
			strings.Contains(line, "not found while reverting") {
			stats.SkippedProducts++
		}

		if strings.Contains(line, "Failed to commit transaction") {
			stats.FailedCommits++
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

		if strings.Contains(line, "Successfully created campaign") {
			stats.CampaignsCreated++
			extractCampaignActivity(line, stats)
		}
		if strings.Contains(line, "Successfully updated campaign") {
			stats.CampaignsUpdated++
			extractCampaignActivity(line, stats)
		}
		if strings.Contains(line, "Successfully deleted campaign") {
			stats.CampaignsDeleted++
			extractCampaignActivity(line, stats)
		}
	}
}

func analyzeDebugLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "Applied campaign") {
			stats.ProductsApplied++
		}
		if strings.Contains(line, "Restored product") {
			stats.ProductsRestored++
		}
	}
}

func extractCampaignActivity(line string, stats *LogStats) {
	// Extract the campaign id from log lines like "campaign 42"
	campaignRegex := regexp.MustCompile(`campaign (\d+)`)
	if match := campaignRegex.FindStringSubmatch(line); match != nil {
		stats.CampaignActivity[match[1]]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Campaign Lifecycle:")
	fmt.Printf("   Campaigns Created: %d\n", stats.CampaignsCreated)
	fmt.Printf("   Campaigns Updated: %d\n", stats.CampaignsUpdated)
	fmt.Printf("   Campaigns Deleted: %d\n", stats.CampaignsDeleted)

	fmt.Println("\n2. Pricing Engine:")
	fmt.Printf("   Product Prices Applied: %d\n", stats.ProductsApplied)
	fmt.Printf("   Product Prices Restored: %d\n", stats.ProductsRestored)
	fmt.Printf("   Skipped Products: %d\n", stats.SkippedProducts)
	fmt.Printf("   Failed Commits: %d\n", stats.FailedCommits)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n4. Most Touched Campaigns:")
	printTopCampaigns(stats.CampaignActivity, 5)

	fmt.Println("\n5. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopCampaigns(campaigns map[string]int, limit int) {
	type campaignActivity struct {
		id    string
		count int
	}

	var activities []campaignActivity
	for id, count := range campaigns {
		activities = append(activities, campaignActivity{id, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   campaign %s: %d operations\n", activity.id, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		message string
		count   int
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
		fmt.Printf("   %s: %d occurrences\n", err.message, err.count)
	}
}
