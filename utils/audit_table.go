package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/fabric-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawAuditReport renders the three report sections in fixed order followed
// by the numeric summary.
func DrawAuditReport(account *model.AccountInfo, report model.AuditReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🧵 FABRIC CAPACITY RESERVATION AUDIT"))
	if account != nil && account.User != "" {
		fmt.Printf(" Signed in as: %s\n", text.FgBlue.Sprint(account.User))
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawCapacitiesSection("Capacities with reservation", report.WithReservation, text.FgGreen)
	drawUnusedReservationsSection(report)
	drawCapacitiesSection("Capacities without reservation (pay-as-you-go)", report.WithoutReservation, text.FgYellow)

	drawSummary(report)
}

func drawCapacitiesSection(title string, capacities []model.Capacity, color text.Color) {
	fmt.Printf("\n %s\n", text.FgHiCyan.Sprintf("📋 %s", title))

	if len(capacities) == 0 {
		fmt.Printf(" %s\n", text.FgHiBlack.Sprint("none found"))
		fmt.Printf(" Count: %d\n", 0)
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Name", "Subscription", "Resource Group", "Region", "SKU", "State", "Reservation"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
	})

	for _, capacity := range capacities {
		reservation := "-"
		if capacity.HasReservation() {
			reservation = shortID(capacity.ReservationID)
		}

		tw.AppendRow(table.Row{
			color.Sprint(capacity.Name),
			capacity.SubscriptionID,
			capacity.ResourceGroup,
			capacity.Location,
			capacity.SKUName,
			capacity.State,
			reservation,
		})
	}

	tw.Render()
	fmt.Printf(" Count: %d\n", len(capacities))
}

func drawUnusedReservationsSection(report model.AuditReport) {
	fmt.Printf("\n %s\n", text.FgHiCyan.Sprint("📋 Reservations without capacity (unused)"))

	if !report.ReservationsResolved {
		fmt.Printf(" %s\n", text.FgHiYellow.Sprint("check skipped: reservation orders could not be listed (missing billing read permission?)"))
		return
	}

	if len(report.UnusedReservations) == 0 {
		fmt.Printf(" %s\n", text.FgHiBlack.Sprint("none found"))
		fmt.Printf(" Count: %d\n", 0)
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Reservation", "Order", "SKU", "Quantity", "State"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})

	for _, item := range report.UnusedReservations {
		name := item.DisplayName
		if name == "" {
			name = item.Name
		}

		tw.AppendRow(table.Row{
			text.FgRed.Sprint(name),
			item.OrderID,
			item.SKUName,
			item.Quantity,
			item.ProvisioningState,
		})
	}

	tw.Render()
	fmt.Printf(" Count: %d\n", len(report.UnusedReservations))
}

func drawSummary(report model.AuditReport) {
	fmt.Printf("\n %s\n", text.FgHiWhite.Sprint("SUMMARY"))
	fmt.Printf(" Total capacities:        %d\n", report.TotalCapacities())
	fmt.Printf(" With reservation:        %s\n", text.FgGreen.Sprintf("%d", len(report.WithReservation)))
	fmt.Printf(" Without reservation:     %s\n", text.FgYellow.Sprintf("%d", len(report.WithoutReservation)))
	if report.ReservationsResolved {
		fmt.Printf(" Unused reservations:     %s\n", text.FgRed.Sprintf("%d", len(report.UnusedReservations)))
	}

	fmt.Println()
	switch {
	case report.TotalCapacities() == 0:
		fmt.Printf(" %s\n", text.FgHiBlack.Sprint("No Fabric capacities found in any scanned subscription."))
	case len(report.WithoutReservation) > 0:
		fmt.Printf(" %s\n", text.FgHiRed.Sprintf("⚠ %d capacity(ies) run pay-as-you-go; a reservation could cut their cost by up to ~40%%.", len(report.WithoutReservation)))
	default:
		fmt.Printf(" %s\n", text.FgHiGreen.Sprint("✔ All capacities are covered by reservations."))
	}
}

// shortID renders the trailing segment of a reservation resource path
func shortID(id string) string {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '/' {
			return id[i+1:]
		}
	}
	return id
}
