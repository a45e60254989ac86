package services

import (
	"context"

	"forever_server/models"
)

type AdminService struct {
	Dynamo *DynamoService
}

// GetStats aggregates the dashboard counters: biodata totals split by gender
// and tier, plus revenue from approved payments.
func (as *AdminService) GetStats(ctx context.Context) (*models.AdminStats, error) {
	var biodatas []models.Biodata
	if err := as.Dynamo.ScanInto(ctx, models.BiodataTable, &biodatas); err != nil {
		return nil, err
	}

	var payments []models.Payment
	if err := as.Dynamo.ScanInto(ctx, models.PaymentsTable, &payments); err != nil {
		return nil, err
	}

	stats := &models.AdminStats{TotalBiodata: len(biodatas)}
	for _, b := range biodatas {
		switch b.Gender {
		case "Male":
			stats.MaleBiodata++
		case "Female":
			stats.FemaleBiodata++
		}
		if b.Status == models.StatusPremium {
			stats.PremiumBiodata++
		}
	}
	for _, p := range payments {
		if p.Status == models.PaymentApproved {
			stats.TotalRevenue += p.Amount
		}
	}

	return stats, nil
}
