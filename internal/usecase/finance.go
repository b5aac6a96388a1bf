package usecase

import (
	"sort"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/dto/response"
)

const (
	// supplierNA labels participants whose event has no supplier.
	supplierNA = "N/A"
	// agencyDirect labels direct bookings by non-admin staff without an agency.
	agencyDirect = "Diretto/Nessuna"
	// virtualAgencyCommission is the per-head fixed commission credited to the
	// in-house "agency" for admin-created bookings.
	virtualAgencyCommission = 1.0
)

// FinanceRow pairs one participant with its resolved attribution context:
// the event's supplier name, the creator's agency and its effective
// commission config (per-event override or agency default), and the
// creator's role.
type FinanceRow struct {
	Participant     *entity.Participant
	SupplierName    string
	AgencyName      string
	HasAgency       bool
	CommissionValue float64
	CommissionType  entity.CommissionType
	CreatorRole     entity.UserRole
	AssistantName   string
}

// effectiveContribution derives the revenue a participant contributes.
// Rejected bookings contribute nothing. A refund retains the deposit only
// when it was a genuine partial refund (0 < deposit < price); a full refund
// contributes nothing. Everything else is recognized at the full listed
// price, whether or not only a deposit was collected.
func effectiveContribution(p *entity.Participant) (amount float64, pax int, ok bool) {
	if p.ApprovalStatus == entity.ApprovalRejected {
		return 0, 0, false
	}

	if p.PaymentType == entity.PaymentRefunded {
		if p.Deposit > 0 && p.Deposit < p.Price {
			return p.Deposit, p.GroupSize, true
		}
		return 0, 0, false
	}

	return p.Price, p.GroupSize, true
}

type supplierAccumulator struct {
	name  string
	total float64
	pax   int
}

type agencyAccumulator struct {
	name       string
	total      float64
	pax        int
	commission float64
}

// resolveAgencyGroup maps a row to the agency it is attributed to. Admin
// bookings without an agency are credited to a virtual in-house agency with a
// fixed per-head commission; anything else without an agency is a direct
// booking with no commission.
func resolveAgencyGroup(row FinanceRow) (name string, value float64, ctype entity.CommissionType) {
	if row.HasAgency {
		return row.AgencyName, row.CommissionValue, row.CommissionType
	}
	if row.CreatorRole == entity.RoleAdmin {
		return entity.DefaultSupplierName, virtualAgencyCommission, entity.CommissionFixed
	}
	return agencyDirect, 0, entity.CommissionPercentage
}

// agencyCommission applies one row's commission config to its recognized
// amount. Fixed commissions are per head; percentage commissions apply to
// the amount. Always charged per row, never on a group total, so rows of
// the same agency may carry different configs without interfering.
func agencyCommission(ctype entity.CommissionType, value, total float64, pax int) float64 {
	if ctype == entity.CommissionFixed {
		return float64(pax) * value
	}
	return total * (value / 100)
}

// computeEventFinancials derives per-supplier shares, per-agency commissions,
// and net profit for one event's participants. Commission is charged per row
// with that row's resolved config, so the summary does not depend on row
// order and agrees with the grouped report built from the same rows.
func computeEventFinancials(rows []FinanceRow, supplierCostRatio float64) *response.FinancialSummary {
	suppliers := make(map[string]*supplierAccumulator)
	agencies := make(map[string]*agencyAccumulator)

	for _, row := range rows {
		amount, pax, ok := effectiveContribution(row.Participant)
		if !ok {
			continue
		}

		supplierName := row.SupplierName
		if supplierName == "" {
			supplierName = supplierNA
		}

		supplier, exists := suppliers[supplierName]
		if !exists {
			supplier = &supplierAccumulator{name: supplierName}
			suppliers[supplierName] = supplier
		}
		supplier.total += amount
		supplier.pax += pax

		agencyName, value, ctype := resolveAgencyGroup(row)
		agency, exists := agencies[agencyName]
		if !exists {
			agency = &agencyAccumulator{name: agencyName}
			agencies[agencyName] = agency
		}
		agency.total += amount
		agency.pax += pax
		agency.commission += agencyCommission(ctype, value, amount, pax)
	}

	summary := &response.FinancialSummary{
		SupplierRows: []response.SupplierShareRow{},
		AgencyRows:   []response.AgencyShareRow{},
	}

	for _, supplier := range suppliers {
		share := supplier.total * supplierCostRatio
		summary.SupplierRows = append(summary.SupplierRows, response.SupplierShareRow{
			Name:  supplier.name,
			Pax:   supplier.pax,
			Total: supplier.total,
			Share: share,
		})
		summary.Totals.SupplierShare += share
		summary.Totals.Revenue += supplier.total
		summary.Totals.Pax += supplier.pax
	}

	for _, agency := range agencies {
		commission := agency.commission
		// Each agency group carries supplier cost at the same global ratio
		// used for the supplier rows.
		supplierCost := agency.total * supplierCostRatio
		netProfit := agency.total - supplierCost - commission

		summary.AgencyRows = append(summary.AgencyRows, response.AgencyShareRow{
			Name:                agency.name,
			Pax:                 agency.pax,
			CommissionableTotal: agency.total,
			Commission:          commission,
			SupplierCost:        supplierCost,
			NetProfit:           netProfit,
		})
		summary.Totals.AgencyCommission += commission
		summary.Totals.NetProfit += netProfit
	}

	sort.Slice(summary.SupplierRows, func(i, j int) bool {
		return summary.SupplierRows[i].Name < summary.SupplierRows[j].Name
	})
	sort.Slice(summary.AgencyRows, func(i, j int) bool {
		return summary.AgencyRows[i].Name < summary.AgencyRows[j].Name
	})

	return summary
}
