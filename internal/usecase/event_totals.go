package usecase

import (
	"context"
	"fmt"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/internal/dto/request"
	"corfumania-backoffice/internal/dto/response"

	"github.com/google/uuid"
)

// collectedCash is the money actually in hand for a booking, as opposed to
// the revenue it is recognized at. Deposit-only bookings count the deposit,
// settled ones the full price, and refunds keep only a retained partial
// deposit.
func collectedCash(p *entity.Participant) float64 {
	switch {
	case p.ApprovalStatus == entity.ApprovalRejected:
		return 0
	case p.PaymentType == entity.PaymentRefunded:
		if p.Deposit > 0 && p.Deposit < p.Price {
			return p.Deposit
		}
		return 0
	case p.PaymentType == entity.PaymentDeposit, p.PaymentType == entity.PaymentCancelled:
		return p.Deposit
	default:
		return p.Price
	}
}

// eventTotals summarizes one event's booking list for list and detail views.
func eventTotals(participants []*entity.Participant) (count, pax int, recognized, cash float64) {
	for _, p := range participants {
		count++
		if amount, ppax, ok := effectiveContribution(p); ok {
			recognized += amount
			pax += ppax
		}
		cash += collectedCash(p)
	}
	return count, pax, recognized, cash
}

// commissionsFromInputs parses per-event commission overrides. The caller
// fills in the event linkage on each returned row.
func commissionsFromInputs(inputs []request.AgencyCommissionInput) ([]*entity.AgencyCommission, error) {
	commissions := make([]*entity.AgencyCommission, 0, len(inputs))
	for _, input := range inputs {
		agencyUUID, err := uuid.Parse(input.AgencyID)
		if err != nil {
			return nil, fmt.Errorf("invalid agency ID format %s: %w", input.AgencyID, err)
		}
		commissions = append(commissions, &entity.AgencyCommission{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			AgencyID:        agencyUUID,
			CommissionValue: input.CommissionValue,
			CommissionType:  entity.CommissionType(input.CommissionType),
		})
	}
	return commissions, nil
}

// commissionResponses shapes stored overrides for output, resolving agency
// names through the repository.
func commissionResponses(ctx context.Context, repo *repository.Repository, commissions []*entity.AgencyCommission) ([]response.AgencyCommissionResponse, error) {
	responses := make([]response.AgencyCommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		resp := response.AgencyCommissionResponse{
			AgencyID:        c.AgencyID.String(),
			CommissionValue: c.CommissionValue,
			CommissionType:  c.CommissionType,
		}
		agency, err := repo.Agency.FindByID(ctx, c.AgencyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load agency %s: %w", c.AgencyID, err)
		}
		if agency != nil {
			resp.AgencyName = agency.Name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
