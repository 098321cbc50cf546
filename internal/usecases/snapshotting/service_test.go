package snapshotting

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spotfinder/parking-analytics-api/infrastructure/repository/mocks"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/metrics"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/clock"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateSnapshot(t *testing.T) {
	log.SetupTestLogger()

	capturedAt := time.Date(2024, 3, 15, 9, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	ownerID := int64(7)
	totals := domain.EmptyTotalsKpi()
	totals.TotalRevenue.Value = 150.5

	tests := []struct {
		name      string
		ownerID   *int64
		setup     func(repo *mocks.MockAnalyticsSnapshotRepository)
		expectErr string
	}{
		{
			name:    "Grava snapshot do proprietário",
			ownerID: &ownerID,
			setup: func(repo *mocks.MockAnalyticsSnapshotRepository) {
				repo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, snapshot *domain.AnalyticsSnapshot) error {
						assert.Len(t, snapshot.ID, 12)
						assert.Equal(t, int64(7), *snapshot.OwnerID)
						assert.Equal(t, 150.5, snapshot.Totals.TotalRevenue.Value)
						assert.Equal(t, time.UTC, snapshot.CapturedAt.Location())
						assert.True(t, snapshot.CapturedAt.Equal(capturedAt))
						return nil
					})
			},
		},
		{
			name:    "Grava snapshot da plataforma",
			ownerID: nil,
			setup: func(repo *mocks.MockAnalyticsSnapshotRepository) {
				repo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, snapshot *domain.AnalyticsSnapshot) error {
						assert.Nil(t, snapshot.OwnerID)
						return nil
					})
			},
		},
		{
			name:    "Falha do repositório",
			ownerID: &ownerID,
			setup: func(repo *mocks.MockAnalyticsSnapshotRepository) {
				repo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectErr: apiErrors.ErrSnapshotNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, WithClock(clock.NewMockClock(capturedAt)), WithOrigin(OriginScheduler))
			before := testutil.ToFloat64(metrics.SnapshotsCreatedTotal.WithLabelValues(OriginScheduler))

			id, err := service.CreateSnapshot(context.Background(), tt.ownerID, totals)

			after := testutil.ToFloat64(metrics.SnapshotsCreatedTotal.WithLabelValues(OriginScheduler))
			if tt.expectErr != "" {
				var snapshotErr *SnapshotError
				require.ErrorAs(t, err, &snapshotErr)
				assert.Equal(t, tt.expectErr, snapshotErr.Code)
				assert.ErrorIs(t, err, ErrSnapshotNotAvailable)
				assert.Empty(t, id)
				assert.Equal(t, before, after)
				return
			}

			require.NoError(t, err)
			assert.Len(t, id, 12)
			assert.Equal(t, before+1, after)
		})
	}
}

func TestService_CreateSnapshot_IDFailure(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := &Service{
		snapshotRepo: mocks.NewMockAnalyticsSnapshotRepository(ctrl),
		clock:        clock.NewRealClock(),
		origin:       OriginAPI,
		generateID: func() (string, error) {
			return "", assert.AnError
		},
	}

	_, err := service.CreateSnapshot(context.Background(), nil, domain.EmptyTotalsKpi())

	assert.ErrorIs(t, err, ErrIDGeneration)
}
