package sim

// Record is one row of simulation results for a single coin.
type Record struct {
	Coin           string
	ProfitUSDT     float64
	MaxDrawdownPct float64
	Trades         string
	StuckDays      float64
	EndPositions   string
}

// Table is the ordered collection of records for one simulation run.
type Table []Record
