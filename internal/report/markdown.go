package report

import (
	"fmt"
	"sort"
	"strings"

	"simreport/internal/sim"
)

const (
	reportTitle    = "# Full Simulation Results (90 Days)"
	reportStrategy = "**Strategy**: Buy Dip (Standard Dynamic Spacing)"

	tableHeader   = "| COIN | PROFIT ($) | MAX DD (%) | TRADES | STUCK (Days) | BAGS |"
	tableAlignRow = "| :--- | :--- | :--- | :--- | :--- | :--- |"
)

// SortByProfitDesc orders the table by profit descending, in place. Rows
// with equal profit keep their original relative order.
func SortByProfitDesc(table sim.Table) {
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].ProfitUSDT > table[j].ProfitUSDT
	})
}

// RenderMarkdown produces the full report document for an already-sorted
// table: heading, strategy line, table header, alignment row, then one data
// row per record.
func RenderMarkdown(table sim.Table) string {
	var md strings.Builder

	md.WriteString(reportTitle + "\n")
	md.WriteString(reportStrategy + "\n\n")
	md.WriteString(tableHeader + "\n")
	md.WriteString(tableAlignRow + "\n")

	for _, rec := range table {
		md.WriteString(fmt.Sprintf("| %s | $%.2f | %.2f%% | %s | %.1f | %s |\n",
			rec.Coin,
			rec.ProfitUSDT,
			rec.MaxDrawdownPct,
			rec.Trades,
			rec.StuckDays,
			rec.EndPositions))
	}

	return md.String()
}
