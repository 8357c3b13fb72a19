package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/elC0mpa/fabric-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawCostTable renders the current month costs of one subscription grouped
// by service, with the Fabric rows highlighted.
func DrawCostTable(sub model.Subscription, costInfo *model.CostInfo) {
	if costInfo == nil {
		return
	}

	header := fmt.Sprintf("Current Month\n(%s\n%s)", deref(costInfo.Start), deref(costInfo.End))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(fmt.Sprintf("Costs for %s", sub.Name))
	tw.AppendHeader(table.Row{"Service", header})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, VAlignHeader: text.VAlignMiddle},
	})

	var total float64
	unit := "USD"

	for _, serviceCost := range orderCostServices(costInfo.CostGroup) {
		total += serviceCost.amount
		if serviceCost.unit != "" {
			unit = serviceCost.unit
		}

		name := serviceCost.name
		amount := fmt.Sprintf("%.2f %s", serviceCost.amount, serviceCost.unit)
		if strings.Contains(strings.ToLower(name), "fabric") {
			name = text.FgHiGreen.Sprint(name)
			amount = text.FgHiGreen.Sprint(amount)
		}

		tw.AppendRow(table.Row{name, amount})
	}

	tw.AppendSeparator()
	tw.AppendRow(table.Row{
		text.FgHiWhite.Sprint("Total"),
		text.FgHiWhite.Sprintf("%.2f %s", total, unit),
	})

	tw.Render()
}

type serviceCost struct {
	name   string
	amount float64
	unit   string
}

func orderCostServices(costGroups model.CostGroup) []serviceCost {
	sortedServices := make([]serviceCost, 0, len(costGroups))
	for key, group := range costGroups {
		sortedServices = append(sortedServices, serviceCost{
			name:   key,
			amount: group.Amount,
			unit:   group.Unit,
		})
	}

	sort.Slice(sortedServices, func(i, j int) bool {
		return sortedServices[i].amount > sortedServices[j].amount
	})

	return sortedServices
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
