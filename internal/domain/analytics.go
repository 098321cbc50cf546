package domain

import "time"

// ReportingCurrency é a única moeda de relatório
const ReportingCurrency = "USD"

const (
	ActivityParkingCreated       = "parking_created"
	ActivityReservationConfirmed = "reservation_confirmed"
)

type TotalsKpi struct {
	TotalRevenue       RevenueKpi   `json:"totalRevenue"`
	OccupiedSpaces     OccupancyKpi `json:"occupiedSpaces"`
	ActiveUsers        UsersKpi     `json:"activeUsers"`
	RegisteredParkings ParkingsKpi  `json:"registeredParkings"`
}

type RevenueKpi struct {
	Value           float64 `json:"value"`
	Currency        string  `json:"currency"`
	DeltaPercentage float64 `json:"deltaPercentage"`
	DeltaText       string  `json:"deltaText"`
	Text            string  `json:"text"`
}

type OccupancyKpi struct {
	Occupied   int    `json:"occupied"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Text       string `json:"text"`
	DeltaText  string `json:"deltaText"`
}

type UsersKpi struct {
	Total           int     `json:"total"`
	DeltaPercentage float64 `json:"deltaPercentage"`
	Text            string  `json:"text"`
	NewUsers        int     `json:"newUsers"`
}

type ParkingsKpi struct {
	Total           int     `json:"total"`
	NewCount        int     `json:"newCount"`
	Text            string  `json:"text"`
	DeltaPercentage float64 `json:"deltaPercentage"`
}

// EmptyTotalsKpi é o resultado canônico quando não há dados ou o cálculo falha
func EmptyTotalsKpi() TotalsKpi {
	return TotalsKpi{
		TotalRevenue: RevenueKpi{
			Value:           0,
			Currency:        ReportingCurrency,
			DeltaPercentage: 0,
			DeltaText:       "Sin cambios",
			Text:            "$0 este mes",
		},
		OccupiedSpaces: OccupancyKpi{
			Text:      "0 lugares ocupados",
			DeltaText: "Sin cambios",
		},
		ActiveUsers: UsersKpi{
			Text: "Sin usuarios activos",
		},
		RegisteredParkings: ParkingsKpi{
			Text: "Sin parkings registrados",
		},
	}
}

type RevenueByMonth struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Currency string  `json:"currency"`
}

type OccupancyByHour struct {
	Hour          int `json:"hour"`
	Percentage    int `json:"percentage"`
	OccupiedSpots int `json:"occupiedSpots"`
	TotalSpots    int `json:"totalSpots"`
}

type RelatedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"type"`
}

type ActivityItem struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ActorName     string        `json:"userName"`
	ActorAvatar   *string       `json:"userAvatar"`
	Status        string        `json:"status"`
	CreatedAt     string        `json:"createdAt"`
	RelatedEntity RelatedEntity `json:"relatedEntity"`

	// instante real usado na ordenação, zero quando ausente
	OccurredAt time.Time `json:"-"`
}

type TopParking struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	OccupancyPercentage int     `json:"occupancyPercentage"`
	Rating              float64 `json:"rating"`
	MonthlyRevenue      float64 `json:"monthlyRevenue"`
	Currency            string  `json:"currency"`
	Address             string  `json:"address"`
	Status              string  `json:"status"`
}

// AnalyticsSummary alimenta o painel principal
type AnalyticsSummary struct {
	ID               string             `json:"id"`
	ProfileID        string             `json:"profileId"`
	KPIs             SummaryKpis        `json:"kpis"`
	HourlyOccupation []HourlyOccupation `json:"hourlyOccupation"`
	RecentActivity   []SummaryActivity  `json:"recentActivity"`
}

type SummaryKpis struct {
	AvgOccupation  SummaryKpi `json:"avgOccupation"`
	MonthlyRevenue SummaryKpi `json:"monthlyRevenue"`
	UniqueUsers    SummaryKpi `json:"uniqueUsers"`
	AvgTime        SummaryKpi `json:"avgTime"`
}

type SummaryKpi struct {
	Value float64 `json:"value"`
	Trend float64 `json:"trend"`
}

type HourlyOccupation struct {
	Hour       string `json:"hour"`
	Percentage int    `json:"percentage"`
}

type SummaryActivity struct {
	Action  string `json:"action"`
	Details string `json:"details"`
	TimeAgo string `json:"timeAgo"`
}

// AnalyticsSnapshot é uma cópia imutável de um TotalsKpi
type AnalyticsSnapshot struct {
	ID         string    `json:"id"`
	OwnerID    *int64    `json:"ownerId"`
	Totals     TotalsKpi `json:"totals"`
	CapturedAt time.Time `json:"capturedAt"`
}
