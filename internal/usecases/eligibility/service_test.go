package eligibility

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-analysis-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/creative-analysis-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func adCreatedDaysAgo(id, adsetID, campaignID string, daysAgo int) domain.Ad {
	return domain.Ad{
		ID:          id,
		Name:        "ad " + id,
		Status:      "ACTIVE",
		CreatedTime: time.Now().AddDate(0, 0, -daysAgo),
		AdsetID:     adsetID,
		CampaignID:  campaignID,
	}
}

func TestFilterEligibleAds_CorteDeIdadeInclusivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaMock := mocks.NewMockIntegrator(ctrl)
	service := NewService(metaMock)

	filters := domain.EligibilityFilters{DaysThreshold: 7, MinSpend: 250.0}

	ads := []domain.Ad{
		adCreatedDaysAgo("ad_old", "as1", "c1", 10),
		adCreatedDaysAgo("ad_edge", "as1", "c1", 7),
		adCreatedDaysAgo("ad_new", "as1", "c1", 3),
	}

	metaMock.EXPECT().ListAds("123").Return(ads, nil)
	metaMock.EXPECT().
		GetAdSpends("123", []string{"ad_old", "ad_edge"}, gomock.Any(), 250.0).
		Return([]domain.EligibleAd{
			{Ad: domain.Ad{ID: "ad_edge", Name: "ad ad_edge"}, Spend: 300.0},
			{Ad: domain.Ad{ID: "ad_old", Name: "ad ad_old"}, Spend: 900.0},
		}, nil)

	eligible, err := service.FilterEligibleAds("123", filters)
	require.NoError(t, err)

	// Anúncio criado exatamente no dia limite entra; ordenação por gasto
	// decrescente.
	require.Len(t, eligible, 2)
	assert.Equal(t, "ad_old", eligible[0].ID)
	assert.Equal(t, "ad_edge", eligible[1].ID)
}

func TestFilterEligibleAds_EscopoDeAdsetECampanha(t *testing.T) {
	tests := []struct {
		name        string
		adsetIDs    []string
		campaignIDs []string
		expectedIDs []string
	}{
		{
			name:        "somente adsets",
			adsetIDs:    []string{"as1"},
			expectedIDs: []string{"ad1"},
		},
		{
			name:        "somente campanhas",
			campaignIDs: []string{"c2"},
			expectedIDs: []string{"ad2"},
		},
		{
			name:        "adsets e campanhas aceitam qualquer um dos dois",
			adsetIDs:    []string{"as1"},
			campaignIDs: []string{"c2"},
			expectedIDs: []string{"ad1", "ad2"},
		},
		{
			name:        "sem escopo passa tudo",
			expectedIDs: []string{"ad1", "ad2", "ad3"},
		},
	}

	ads := []domain.Ad{
		adCreatedDaysAgo("ad1", "as1", "c1", 30),
		adCreatedDaysAgo("ad2", "as2", "c2", 30),
		adCreatedDaysAgo("ad3", "as3", "c3", 30),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			metaMock := mocks.NewMockIntegrator(ctrl)
			service := NewService(metaMock)

			metaMock.EXPECT().ListAds("123").Return(ads, nil)
			metaMock.EXPECT().
				GetAdSpends("123", tt.expectedIDs, gomock.Any(), 250.0).
				Return([]domain.EligibleAd{}, nil)

			_, err := service.FilterEligibleAds("123", domain.EligibilityFilters{
				DaysThreshold: 7,
				MinSpend:      250.0,
				AdsetIDs:      tt.adsetIDs,
				CampaignIDs:   tt.campaignIDs,
			})
			require.NoError(t, err)
		})
	}
}

func TestFilterEligibleAds_SemCandidatosNaoConsultaGasto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaMock := mocks.NewMockIntegrator(ctrl)
	service := NewService(metaMock)

	metaMock.EXPECT().ListAds("123").Return([]domain.Ad{
		adCreatedDaysAgo("ad_new", "as1", "c1", 1),
	}, nil)

	eligible, err := service.FilterEligibleAds("123", domain.EligibilityFilters{
		DaysThreshold: 7,
		MinSpend:      250.0,
	})
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestFilterEligibleAds_JanelaDeGastoTerminaOntem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaMock := mocks.NewMockIntegrator(ctrl)
	service := NewService(metaMock)

	metaMock.EXPECT().ListAds("123").Return([]domain.Ad{
		adCreatedDaysAgo("ad1", "as1", "c1", 30),
	}, nil)

	metaMock.EXPECT().
		GetAdSpends("123", []string{"ad1"}, gomock.Any(), 250.0).
		DoAndReturn(func(_ string, _ []string, filters *domain.InsigthFilters, _ float64) ([]domain.EligibleAd, error) {
			require.NotNil(t, filters.StartDate)
			require.NotNil(t, filters.EndDate)

			yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
			assert.Equal(t, yesterday, filters.EndDate.Format(time.DateOnly))

			// Janela de 7 dias corridos terminando ontem.
			expectedStart := time.Now().AddDate(0, 0, -7).Format(time.DateOnly)
			assert.Equal(t, expectedStart, filters.StartDate.Format(time.DateOnly))

			return []domain.EligibleAd{}, nil
		})

	_, err := service.FilterEligibleAds("123", domain.EligibilityFilters{
		DaysThreshold: 7,
		MinSpend:      250.0,
	})
	require.NoError(t, err)
}

func TestFilterEligibleAds_CompletaIdentidadeDoInventario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaMock := mocks.NewMockIntegrator(ctrl)
	service := NewService(metaMock)

	created := time.Now().AddDate(0, 0, -20)
	metaMock.EXPECT().ListAds("123").Return([]domain.Ad{
		{ID: "ad1", Name: "nome do inventário", Status: "PAUSED", CreatedTime: created, AdsetID: "as1", CampaignID: "c1"},
	}, nil)

	metaMock.EXPECT().
		GetAdSpends("123", []string{"ad1"}, gomock.Any(), 250.0).
		Return([]domain.EligibleAd{
			{Ad: domain.Ad{ID: "ad1"}, Spend: 500.0},
		}, nil)

	eligible, err := service.FilterEligibleAds("123", domain.EligibilityFilters{
		DaysThreshold: 7,
		MinSpend:      250.0,
	})
	require.NoError(t, err)

	require.Len(t, eligible, 1)
	assert.Equal(t, "PAUSED", eligible[0].Status)
	assert.Equal(t, "nome do inventário", eligible[0].Name)
	assert.Equal(t, created, eligible[0].CreatedTime)
}

func TestFilterEligibleAds_ErroDoInventarioPropaga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaMock := mocks.NewMockIntegrator(ctrl)
	service := NewService(metaMock)

	metaMock.EXPECT().ListAds("123").Return(nil, errors.New("api indisponível"))

	_, err := service.FilterEligibleAds("123", domain.EligibilityFilters{DaysThreshold: 7})
	assert.Error(t, err)
}
