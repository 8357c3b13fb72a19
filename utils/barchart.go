package utils

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/fabric-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorReserved   = "#1a9850"
	ColorPayAsYouGo = "#d73027"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawCapacityChart renders reserved vs pay-as-you-go capacity counts per
// subscription as a stacked bar chart.
func DrawCapacityChart(subscriptions []model.Subscription, report model.AuditReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🧵 CAPACITIES PER SUBSCRIPTION"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	reserved := countBySubscription(report.WithReservation)
	payAsYouGo := countBySubscription(report.WithoutReservation)

	bc := barchart.New(100, 20)

	for _, sub := range subscriptions {
		withCount := reserved[sub.ID]
		withoutCount := payAsYouGo[sub.ID]
		if withCount == 0 && withoutCount == 0 {
			continue
		}

		data := barchart.BarData{
			Label: barLabel(sub, withCount, withoutCount),
			Values: []barchart.BarValue{
				{
					Name:  "reserved",
					Value: float64(withCount),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorReserved)),
				},
				{
					Name:  "pay-as-you-go",
					Value: float64(withoutCount),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPayAsYouGo)),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func countBySubscription(capacities []model.Capacity) map[string]int {
	counts := make(map[string]int, len(capacities))
	for _, capacity := range capacities {
		counts[capacity.SubscriptionID]++
	}
	return counts
}

func barLabel(sub model.Subscription, withCount, withoutCount int) string {
	name := sub.Name
	if name == "" {
		name = sub.ID
	}
	// Truncate on runes so multi-byte display names don't get split mid-character
	if runes := []rune(name); len(runes) > 16 {
		name = string(runes[:16])
	}
	return fmt.Sprintf("%s (%d/%d)", name, withCount, withCount+withoutCount)
}
