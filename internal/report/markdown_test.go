package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simreport/internal/sim"
)

func TestSortByProfitDesc(t *testing.T) {
	table := sim.Table{
		{Coin: "BTC", ProfitUSDT: 10.5},
		{Coin: "ETH", ProfitUSDT: -2.333},
		{Coin: "SOL", ProfitUSDT: 100},
	}

	SortByProfitDesc(table)

	assert.Equal(t, "SOL", table[0].Coin)
	assert.Equal(t, "BTC", table[1].Coin)
	assert.Equal(t, "ETH", table[2].Coin)
}

func TestSortByProfitDesc_StableOnTies(t *testing.T) {
	table := sim.Table{
		{Coin: "AAA", ProfitUSDT: 5},
		{Coin: "BBB", ProfitUSDT: 5},
		{Coin: "CCC", ProfitUSDT: 7},
		{Coin: "DDD", ProfitUSDT: 5},
	}

	SortByProfitDesc(table)

	require.Len(t, table, 4)
	assert.Equal(t, "CCC", table[0].Coin)
	assert.Equal(t, "AAA", table[1].Coin)
	assert.Equal(t, "BBB", table[2].Coin)
	assert.Equal(t, "DDD", table[3].Coin)
}

func TestRenderMarkdown_HeaderBlock(t *testing.T) {
	doc := RenderMarkdown(nil)

	want := "# Full Simulation Results (90 Days)\n" +
		"**Strategy**: Buy Dip (Standard Dynamic Spacing)\n\n" +
		"| COIN | PROFIT ($) | MAX DD (%) | TRADES | STUCK (Days) | BAGS |\n" +
		"| :--- | :--- | :--- | :--- | :--- | :--- |\n"
	assert.Equal(t, want, doc)
}

func TestRenderMarkdown_RowFormatting(t *testing.T) {
	table := sim.Table{
		{Coin: "SOL", ProfitUSDT: 100, MaxDrawdownPct: 2, Trades: "30", StuckDays: 1.5, EndPositions: "0"},
		{Coin: "BTC", ProfitUSDT: 10.5, MaxDrawdownPct: 5.1, Trades: "12", StuckDays: 0, EndPositions: "0"},
		{Coin: "ETH", ProfitUSDT: -2.333, MaxDrawdownPct: 12.75, Trades: "8", StuckDays: 3, EndPositions: "1"},
	}

	doc := RenderMarkdown(table)
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t, "| SOL | $100.00 | 2.00% | 30 | 1.5 | 0 |", lines[4])
	assert.Equal(t, "| BTC | $10.50 | 5.10% | 12 | 0.0 | 0 |", lines[5])
	assert.Equal(t, "| ETH | $-2.33 | 12.75% | 8 | 3.0 | 1 |", lines[6])
}

func TestRenderMarkdown_IntegerStuckDaysGetsOneDecimal(t *testing.T) {
	table := sim.Table{
		{Coin: "BTC", ProfitUSDT: 1, MaxDrawdownPct: 1, Trades: "1", StuckDays: 3, EndPositions: "0"},
	}

	doc := RenderMarkdown(table)
	assert.Contains(t, doc, "| 3.0 |")
}
