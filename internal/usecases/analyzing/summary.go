package analyzing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
)

const globalSummaryID = "global"

// GetSummary monta o resumo do painel a partir de uma única leitura dos provedores.
// profileID identifica o parking; vazio considera todo o escopo do principal.
func (s *Service) GetSummary(ctx context.Context, principal domain.Principal, profileID string) []domain.AnalyticsSummary {
	profileID = strings.TrimSpace(profileID)

	var parkingID *int64
	if profileID != "" {
		id, err := strconv.ParseInt(profileID, 10, 64)
		if err != nil {
			return []domain.AnalyticsSummary{}
		}
		parkingID = &id
	}

	return failSoft(ctx, viewSummary, emptySlice[domain.AnalyticsSummary], func() ([]domain.AnalyticsSummary, error) {
		data, err := s.load(ctx, principal, parkingID, false)
		if err != nil {
			return nil, err
		}

		now := s.now()
		totals, err := s.computeTotals(data, now)
		if err != nil {
			reportFailure(ctx, &AggregationError{View: viewTotals, Err: err})
			totals = domain.EmptyTotalsKpi()
		}

		id := profileID
		if id == "" {
			id = globalSummaryID
		}

		summary := domain.AnalyticsSummary{
			ID:        id,
			ProfileID: id,
			KPIs: domain.SummaryKpis{
				AvgOccupation:  domain.SummaryKpi{Value: float64(totals.OccupiedSpaces.Percentage)},
				MonthlyRevenue: domain.SummaryKpi{Value: totals.TotalRevenue.Value, Trend: totals.TotalRevenue.DeltaPercentage},
				UniqueUsers:    domain.SummaryKpi{Value: float64(totals.ActiveUsers.Total), Trend: totals.ActiveUsers.DeltaPercentage},
				AvgTime:        domain.SummaryKpi{},
			},
			HourlyOccupation: summaryHours(computeOccupancyByHour(data, now)),
			RecentActivity:   summaryActivity(computeActivity(data, s.clock.Now())),
		}

		return []domain.AnalyticsSummary{summary}, nil
	})
}

func summaryHours(rows []domain.OccupancyByHour) []domain.HourlyOccupation {
	hours := make([]domain.HourlyOccupation, 0, len(rows))
	for _, row := range rows {
		hours = append(hours, domain.HourlyOccupation{
			Hour:       fmt.Sprintf("%02d:00", row.Hour),
			Percentage: row.Percentage,
		})
	}
	return hours
}

func summaryActivity(items []domain.ActivityItem) []domain.SummaryActivity {
	activity := make([]domain.SummaryActivity, 0, len(items))
	for _, item := range items {
		activity = append(activity, domain.SummaryActivity{
			Action:  item.Title,
			Details: item.Description,
			TimeAgo: item.CreatedAt,
		})
	}
	return activity
}
