package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScopeResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	parkingID := int64(3)

	tests := []struct {
		name      string
		principal domain.Principal
		parkingID *int64
		setup     func(parkings *mocks.MockParkingProvider, owners *mocks.MockOwnerResolver)
		expected  []int64
	}{
		{
			name:      "Administrador sem parking - todos os parkings",
			principal: adminPrincipal,
			setup: func(parkings *mocks.MockParkingProvider, _ *mocks.MockOwnerResolver) {
				parkings.EXPECT().ListParkings(gomock.Any(), domain.ScopeAll()).Return([]*domain.ParkingRecord{
					parkingRecord(1, 7, 10, 4, time.Time{}),
					parkingRecord(2, 8, 10, 4, time.Time{}),
				}, nil)
			},
			expected: []int64{1, 2},
		},
		{
			name:      "Administrador com parking - não filtra por dono",
			principal: adminPrincipal,
			parkingID: &parkingID,
			setup: func(parkings *mocks.MockParkingProvider, _ *mocks.MockOwnerResolver) {
				parkings.EXPECT().ListParkings(gomock.Any(), domain.ScopeParking(nil, parkingID)).Return([]*domain.ParkingRecord{
					parkingRecord(3, 8, 10, 4, time.Time{}),
				}, nil)
			},
			expected: []int64{3},
		},
		{
			name:      "Proprietário com parking - no máximo o parking pedido",
			principal: ownerPrincipal,
			parkingID: &parkingID,
			setup: func(parkings *mocks.MockParkingProvider, owners *mocks.MockOwnerResolver) {
				owners.EXPECT().ResolveOwnerID(gomock.Any(), ownerPrincipal).Return(int64(7), nil)
				parkings.EXPECT().ListParkings(gomock.Any(), domain.ScopeParking(ptr(int64(7)), parkingID)).Return([]*domain.ParkingRecord{
					parkingRecord(1, 7, 10, 4, time.Time{}),
					nil,
					parkingRecord(3, 7, 10, 4, time.Time{}),
				}, nil)
			},
			expected: []int64{3},
		},
		{
			name:      "Falha do provedor - lista vazia",
			principal: ownerPrincipal,
			setup: func(parkings *mocks.MockParkingProvider, owners *mocks.MockOwnerResolver) {
				owners.EXPECT().ResolveOwnerID(gomock.Any(), ownerPrincipal).Return(int64(7), nil)
				parkings.EXPECT().ListParkings(gomock.Any(), domain.ScopeOwner(7)).Return(nil, errors.New("conexão recusada"))
			},
			expected: []int64{},
		},
		{
			name:      "Proprietário desconhecido - lista vazia sem consultar parkings",
			principal: domain.Principal{Email: "ghost@spotfinder.com", RoleID: domain.RoleOwner},
			setup: func(_ *mocks.MockParkingProvider, owners *mocks.MockOwnerResolver) {
				owners.EXPECT().ResolveOwnerID(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			expected: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			parkings := mocks.NewMockParkingProvider(ctrl)
			owners := mocks.NewMockOwnerResolver(ctrl)
			tt.setup(parkings, owners)

			result := NewScopeResolver(parkings, owners).Resolve(ctx, tt.principal, tt.parkingID)

			require.NotNil(t, result)
			ids := make([]int64, 0, len(result))
			for _, p := range result {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestScopeResolver_WithoutOwnerResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	parkings := mocks.NewMockParkingProvider(ctrl)

	result := NewScopeResolver(parkings, nil).ResolveOwned(context.Background(), adminPrincipal)

	assert.Empty(t, result)
}
