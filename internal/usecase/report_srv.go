package usecase

import (
	"context"
	"fmt"
	"sort"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/internal/dto/response"
	"corfumania-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	reportKindExcursions = "excursions"
	reportKindTransfers  = "transfers"
	reportKindRentals    = "rentals"
)

// ReportQuery selects which bookings the report covers. From and To are
// inclusive dates; every slice filter is optional and empty means all.
type ReportQuery struct {
	From         string
	To           string
	Kinds        []string
	SupplierIDs  []uuid.UUID
	UserIDs      []uuid.UUID
	ExcursionIDs []uuid.UUID
}

type ReportService interface {
	Build(ctx context.Context, query ReportQuery) (*response.ReportResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewReportService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReportService {
	return &reportService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "report")),
	}
}

// reportEntry is one booking with everything the reducer needs to group it.
type reportEntry struct {
	FinanceRow
	EventName string
	Kind      string
}

func (s *reportService) Build(ctx context.Context, query ReportQuery) (*response.ReportResponse, error) {
	fromDate, err := utils.ParseDate(query.From)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %s: %w", query.From, err)
	}
	toDate, err := utils.ParseDate(query.To)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %s: %w", query.To, err)
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("to date must not be before from date")
	}
	// Inclusive upper bound: events on the last day count.
	toEnd := toDate.AddDate(0, 0, 1)

	include := map[string]bool{
		reportKindExcursions: len(query.Kinds) == 0,
		reportKindTransfers:  len(query.Kinds) == 0,
		reportKindRentals:    len(query.Kinds) == 0,
	}
	for _, kind := range query.Kinds {
		if _, known := include[kind]; !known {
			return nil, fmt.Errorf("unknown report kind %s", kind)
		}
		include[kind] = true
	}

	suppliers := uuidSet(query.SupplierIDs)
	users := uuidSet(query.UserIDs)
	excursionIDs := uuidSet(query.ExcursionIDs)

	resolver := newFinanceResolver(s.repo, s.log)
	var entries []reportEntry

	if include[reportKindExcursions] {
		excursions, err := s.repo.Excursion.FindBetween(ctx, fromDate, toEnd)
		if err != nil {
			s.log.Error("Failed to load excursions", zap.Error(err))
			return nil, fmt.Errorf("failed to load excursions")
		}
		for _, excursion := range excursions {
			if excursionIDs != nil && !excursionIDs[excursion.ID] {
				continue
			}
			if !supplierIncluded(suppliers, excursion.SupplierID) {
				continue
			}
			participants, err := s.repo.Participant.FindByExcursionID(ctx, excursion.ID)
			if err != nil {
				s.log.Error("Failed to load participants", zap.Error(err), zap.String("excursion_id", excursion.ID.String()))
				return nil, fmt.Errorf("failed to load participants")
			}
			overrides, err := s.repo.AgencyCommission.FindByExcursionID(ctx, excursion.ID)
			if err != nil {
				s.log.Error("Failed to load commission overrides", zap.Error(err), zap.String("excursion_id", excursion.ID.String()))
				return nil, fmt.Errorf("failed to load commission overrides")
			}
			rows, err := resolver.rows(ctx, filterByCreator(participants, users), excursion.SupplierID, overrides)
			if err != nil {
				return nil, err
			}
			for _, row := range rows {
				entries = append(entries, reportEntry{
					FinanceRow: row,
					EventName:  excursion.Title,
					Kind:       reportKindExcursions,
				})
			}
		}
	}

	if include[reportKindTransfers] {
		transfers, err := s.repo.Transfer.FindBetween(ctx, fromDate, toEnd)
		if err != nil {
			s.log.Error("Failed to load transfers", zap.Error(err))
			return nil, fmt.Errorf("failed to load transfers")
		}
		for _, transfer := range transfers {
			if !supplierIncluded(suppliers, transfer.SupplierID) {
				continue
			}
			participants, err := s.repo.Participant.FindByTransferID(ctx, transfer.ID)
			if err != nil {
				s.log.Error("Failed to load passengers", zap.Error(err), zap.String("transfer_id", transfer.ID.String()))
				return nil, fmt.Errorf("failed to load passengers")
			}
			overrides, err := s.repo.AgencyCommission.FindByTransferID(ctx, transfer.ID)
			if err != nil {
				s.log.Error("Failed to load commission overrides", zap.Error(err), zap.String("transfer_id", transfer.ID.String()))
				return nil, fmt.Errorf("failed to load commission overrides")
			}
			rows, err := resolver.rows(ctx, filterByCreator(participants, users), transfer.SupplierID, overrides)
			if err != nil {
				return nil, err
			}
			for _, row := range rows {
				entries = append(entries, reportEntry{
					FinanceRow: row,
					EventName:  transfer.Title,
					Kind:       reportKindTransfers,
				})
			}
		}
	}

	// Rentals have no supplier, so a supplier filter excludes them all.
	if include[reportKindRentals] && suppliers == nil {
		rentals, err := s.repo.Participant.FindRentalsBetween(ctx, fromDate, toEnd)
		if err != nil {
			s.log.Error("Failed to load rentals", zap.Error(err))
			return nil, fmt.Errorf("failed to load rentals")
		}
		rows, err := resolver.rows(ctx, filterByCreator(rentals, users), nil, nil)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			name := "Rental"
			if row.Participant.RentalItem != nil {
				name = *row.Participant.RentalItem
			}
			entries = append(entries, reportEntry{
				FinanceRow: row,
				EventName:  name,
				Kind:       reportKindRentals,
			})
		}
	}

	return buildReport(entries, s.config.Finance.SupplierCostRatio), nil
}

// uuidSet returns nil for an empty filter so callers can treat nil as "all".
func uuidSet(ids []uuid.UUID) map[uuid.UUID]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func supplierIncluded(set map[uuid.UUID]bool, supplierID *uuid.UUID) bool {
	if set == nil {
		return true
	}
	return supplierID != nil && set[*supplierID]
}

func filterByCreator(participants []*entity.Participant, users map[uuid.UUID]bool) []*entity.Participant {
	if users == nil {
		return participants
	}
	kept := make([]*entity.Participant, 0, len(participants))
	for _, p := range participants {
		if users[p.CreatedByID] {
			kept = append(kept, p)
		}
	}
	return kept
}

type reportAccumulator struct {
	pax        int
	revenue    float64
	commission float64
}

func accumulate(m map[string]*reportAccumulator, name string, pax int, revenue, commission float64) {
	acc, ok := m[name]
	if !ok {
		acc = &reportAccumulator{}
		m[name] = acc
	}
	acc.pax += pax
	acc.revenue += revenue
	acc.commission += commission
}

func sortedRows(m map[string]*reportAccumulator) []response.ReportRow {
	rows := make([]response.ReportRow, 0, len(m))
	for name, acc := range m {
		rows = append(rows, response.ReportRow{
			Name:       name,
			Pax:        acc.pax,
			Revenue:    acc.revenue,
			Commission: acc.commission,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// buildReport reduces booking entries into the grouped report. Commission is
// decomposed per booking so that each grouping's rows sum to the same global
// totals: fixed commissions charge per head of the booking and percentage
// commissions apply to the booking's own recognized amount.
func buildReport(entries []reportEntry, supplierCostRatio float64) *response.ReportResponse {
	byAgency := make(map[string]*reportAccumulator)
	bySupplier := make(map[string]*reportAccumulator)
	byAssistant := make(map[string]*reportAccumulator)
	byExcursion := make(map[string]*reportAccumulator)
	byTransfer := make(map[string]*reportAccumulator)
	byRental := make(map[string]*reportAccumulator)

	report := &response.ReportResponse{}

	for _, entry := range entries {
		amount, pax, ok := effectiveContribution(entry.Participant)
		if !ok {
			continue
		}

		agencyName, value, ctype := resolveAgencyGroup(entry.FinanceRow)
		commission := agencyCommission(ctype, value, amount, pax)

		supplierName := entry.SupplierName
		if supplierName == "" {
			supplierName = supplierNA
		}
		assistantName := entry.AssistantName
		if assistantName == "" {
			assistantName = supplierNA
		}

		accumulate(byAgency, agencyName, pax, amount, commission)
		accumulate(bySupplier, supplierName, pax, amount, commission)
		accumulate(byAssistant, assistantName, pax, amount, commission)
		switch entry.Kind {
		case reportKindExcursions:
			accumulate(byExcursion, entry.EventName, pax, amount, commission)
		case reportKindTransfers:
			accumulate(byTransfer, entry.EventName, pax, amount, commission)
		case reportKindRentals:
			accumulate(byRental, entry.EventName, pax, amount, commission)
		}

		report.Summary.TotalRevenue += amount
		report.Summary.TotalCommission += commission
		report.Summary.Count++
		report.Summary.TotalPax += pax
	}

	report.ByAgency = sortedRows(byAgency)
	report.ByExcursion = sortedRows(byExcursion)
	report.ByTransfer = sortedRows(byTransfer)
	report.ByRental = sortedRows(byRental)

	// Supplier rows additionally carry the supplier's revenue share.
	report.BySupplier = sortedRows(bySupplier)
	for i := range report.BySupplier {
		share := report.BySupplier[i].Revenue * supplierCostRatio
		report.BySupplier[i].SupplierShare = &share
	}

	// Assistant rows surface their commission under its own label.
	report.ByAssistant = sortedRows(byAssistant)
	for i := range report.ByAssistant {
		assistantCommission := report.ByAssistant[i].Commission
		report.ByAssistant[i].AssistantCommission = &assistantCommission
		report.Summary.TotalAssistantCommission += assistantCommission
	}

	return report
}
