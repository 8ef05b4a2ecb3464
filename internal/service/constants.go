package service

const (
	// Ledger window and display cap
	LedgerDays    = 14
	LedgerMaxRows = 20

	// Load-level cutoffs for ledger rows
	TonnageMediumLbs = 15000
	TonnageHighLbs   = 30000
	CardioMediumMin  = 30
	CardioHighMin    = 50

	// Chart windows
	ChartWeeks = 12
)
