package response

// SupplierShareRow is one supplier's slice of an event's revenue.
type SupplierShareRow struct {
	Name  string  `json:"name"`
	Pax   int     `json:"pax"`
	Total float64 `json:"total"`
	Share float64 `json:"share"`
}

// AgencyShareRow is one agency's commission position on an event.
type AgencyShareRow struct {
	Name                string  `json:"name"`
	Pax                 int     `json:"pax"`
	CommissionableTotal float64 `json:"commissionable_total"`
	Commission          float64 `json:"commission"`
	SupplierCost        float64 `json:"supplier_cost"`
	NetProfit           float64 `json:"net_profit"`
}

type FinancialTotals struct {
	Revenue          float64 `json:"revenue"`
	Pax              int     `json:"pax"`
	SupplierShare    float64 `json:"supplier_share"`
	AgencyCommission float64 `json:"agency_commission"`
	NetProfit        float64 `json:"net_profit"`
}

type FinancialSummary struct {
	SupplierRows []SupplierShareRow `json:"supplier_rows"`
	AgencyRows   []AgencyShareRow   `json:"agency_rows"`
	Totals       FinancialTotals    `json:"totals"`
}
