package cmd

import (
	"context"
	"fmt"
	"time"

	chatlogDomain "github.com/AzielCF/az-chatbox/chatlog/domain"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reportDays int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print chat click statistics",
	Long:  `Prints how many chats visitors started over the last --days days, broken down by channel, agent and country.`,
	Run:   runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportDays, "days", 7, "Number of days to include")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) {
	ctx := context.Background()
	defer StopApp()

	if reportDays < 1 {
		logrus.Fatalln("--days must be at least 1")
	}

	now := time.Now()
	from := now.AddDate(0, 0, -reportDays)
	report, err := chatLogService.Report(ctx, from, now)
	if err != nil {
		logrus.Fatalf("[REPORT] %v", err)
	}

	fmt.Printf("Chats since %s: %s (%s by members)\n",
		humanize.RelTime(from, now, "ago", "from now"),
		humanize.Comma(report.Total),
		humanize.Comma(report.Members),
	)
	printCounts("Channel", report.PerChannel)
	printCounts("Agent", report.PerAgent)
	printCounts("Country", report.PerCountry)
}

func printCounts(title string, counts []chatlogDomain.Count) {
	if len(counts) == 0 {
		return
	}
	fmt.Printf("\n%s\n", title)
	for _, c := range counts {
		name := c.Name
		if name == "" {
			name = "(unknown)"
		}
		fmt.Printf("  %-24s %s\n", name, humanize.Comma(c.Total))
	}
}
