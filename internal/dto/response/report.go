package response

// ReportRow is one grouped line of the financial report. AssistantCommission
// and SupplierShare are only meaningful for some groupings and omitted
// elsewhere.
type ReportRow struct {
	Name                string   `json:"name"`
	Pax                 int      `json:"pax"`
	Revenue             float64  `json:"revenue"`
	Commission          float64  `json:"commission"`
	AssistantCommission *float64 `json:"assistant_commission,omitempty"`
	SupplierShare       *float64 `json:"supplier_share,omitempty"`
}

type ReportSummary struct {
	TotalRevenue             float64 `json:"total_revenue"`
	TotalCommission          float64 `json:"total_commission"`
	TotalAssistantCommission float64 `json:"total_assistant_commission"`
	Count                    int     `json:"count"`
	TotalPax                 int     `json:"total_pax"`
}

type ReportResponse struct {
	Summary     ReportSummary `json:"summary"`
	ByAgency    []ReportRow   `json:"by_agency"`
	BySupplier  []ReportRow   `json:"by_supplier"`
	ByAssistant []ReportRow   `json:"by_assistant"`
	ByExcursion []ReportRow   `json:"by_excursion"`
	ByTransfer  []ReportRow   `json:"by_transfer"`
	ByRental    []ReportRow   `json:"by_rental"`
}
