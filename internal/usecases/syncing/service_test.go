package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads"
	adsclientmocks "github.com/stratify-app/marketing-sync-api/infrastructure/integrator/ads/adsclient/mocks"
	"github.com/stratify-app/marketing-sync-api/infrastructure/repository/mocks"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testMetrics = metrics.New()

func TestRunSync_ValidacaoDeEstado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)

	service := &service{
		integrationRepo: mockIntegrationRepo,
		syncLogRepo:     mockSyncLogRepo,
		registry:        ads.NewRegistryWith(&ads.Adapter{Provider: domain.ProviderGoogleAds}),
		metrics:         testMetrics,
		lookbackDays:    30,
	}

	tests := []struct {
		name        string
		provider    domain.IntegrationProvider
		setup       func()
		expectedErr error
	}{
		{
			name: "Integração inexistente deve retornar not found",
			setup: func() {
				mockIntegrationRepo.EXPECT().
					GetByIDAndUser("int-1", "user-1").
					Return(nil, nil)
			},
			expectedErr: ErrIntegrationNotFound,
		},
		{
			name:     "Provedor divergente do da integração deve retornar mismatch",
			provider: domain.ProviderMetaAds,
			setup: func() {
				mockIntegrationRepo.EXPECT().
					GetByIDAndUser("int-1", "user-1").
					Return(&domain.Integration{
						ID:       "int-1",
						UserID:   "user-1",
						Provider: domain.ProviderGoogleAds,
						Status:   domain.IntegrationStatusConnected,
					}, nil)
			},
			expectedErr: ErrProviderMismatch,
		},
		{
			name: "Integração expirada não sincroniza",
			setup: func() {
				mockIntegrationRepo.EXPECT().
					GetByIDAndUser("int-1", "user-1").
					Return(&domain.Integration{
						ID:       "int-1",
						UserID:   "user-1",
						Provider: domain.ProviderGoogleAds,
						Status:   domain.IntegrationStatusExpired,
					}, nil)
			},
			expectedErr: ErrIntegrationNotConnected,
		},
		{
			name: "Provedor fora do registro deve retornar unknown provider",
			setup: func() {
				mockIntegrationRepo.EXPECT().
					GetByIDAndUser("int-1", "user-1").
					Return(&domain.Integration{
						ID:       "int-1",
						UserID:   "user-1",
						Provider: domain.ProviderTikTokAds,
						Status:   domain.IntegrationStatusConnected,
					}, nil)
			},
			expectedErr: ErrUnknownProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			summary, err := service.RunSync(context.Background(), SyncParams{
				IntegrationID: "int-1",
				UserID:        "user-1",
				Provider:      tt.provider,
				SyncType:      domain.SyncTypeManual,
			})

			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestRunSync_RenovacaoDeToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockMetricRepo := mocks.NewMockCampaignMetricRepository(ctrl)
	mockClient := adsclientmocks.NewMockClient(ctrl)
	mockRefresher := adsclientmocks.NewMockTokenRefresher(ctrl)

	service := &service{
		integrationRepo: mockIntegrationRepo,
		syncLogRepo:     mockSyncLogRepo,
		campaignRepo:    mockCampaignRepo,
		metricRepo:      mockMetricRepo,
		registry:        ads.NewRegistryWith(&ads.Adapter{Provider: domain.ProviderGoogleAds}),
		client:          mockClient,
		refresher:       mockRefresher,
		metrics:         testMetrics,
		lookbackDays:    30,
	}

	expired := time.Now().Add(-time.Hour)

	newIntegration := func() *domain.Integration {
		return &domain.Integration{
			ID:             "int-1",
			UserID:         "user-1",
			Provider:       domain.ProviderGoogleAds,
			Status:         domain.IntegrationStatusConnected,
			AccessToken:    "token-velho",
			TokenExpiresAt: &expired,
		}
	}

	t.Run("Renovação com falha marca a integração como expirada e aborta", func(t *testing.T) {
		integration := newIntegration()

		mockIntegrationRepo.EXPECT().GetByIDAndUser("int-1", "user-1").Return(integration, nil)
		mockSyncLogRepo.EXPECT().Create(gomock.Any()).Return(nil)
		mockRefresher.EXPECT().RefreshAccessToken(gomock.Any(), gomock.Any(), integration).Return("", false)
		mockIntegrationRepo.EXPECT().MarkExpired("int-1", "Token expirado e a renovação falhou").Return(nil)
		mockSyncLogRepo.EXPECT().
			Finalize(gomock.Any(), domain.SyncStatusFailed, gomock.Any(), gomock.Any(), domain.SyncSummary{}, gomock.Any()).
			Return(nil)

		summary, err := service.RunSync(context.Background(), SyncParams{
			IntegrationID: "int-1",
			UserID:        "user-1",
			SyncType:      domain.SyncTypeScheduled,
		})

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, ErrTokenRefreshFailed)
	})

	t.Run("Renovação com sucesso usa o token novo na busca de campanhas", func(t *testing.T) {
		integration := newIntegration()

		mockIntegrationRepo.EXPECT().GetByIDAndUser("int-1", "user-1").Return(integration, nil)
		mockSyncLogRepo.EXPECT().Create(gomock.Any()).Return(nil)
		mockRefresher.EXPECT().RefreshAccessToken(gomock.Any(), gomock.Any(), integration).Return("token-novo", true)
		mockClient.EXPECT().
			FetchCampaigns(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *ads.Adapter, i *domain.Integration) ([]domain.ProviderCampaign, error) {
				assert.Equal(t, "token-novo", i.AccessToken)
				return []domain.ProviderCampaign{}, nil
			})
		mockSyncLogRepo.EXPECT().
			Finalize(gomock.Any(), domain.SyncStatusCompleted, gomock.Any(), gomock.Any(), domain.SyncSummary{}, nil).
			Return(nil)
		mockIntegrationRepo.EXPECT().MarkSyncSuccess("int-1", gomock.Any()).Return(nil)

		summary, err := service.RunSync(context.Background(), SyncParams{
			IntegrationID: "int-1",
			UserID:        "user-1",
			SyncType:      domain.SyncTypeScheduled,
		})

		assert.NoError(t, err)
		assert.Equal(t, &domain.SyncSummary{}, summary)
	})
}

func TestRunSync_FalhaFatalNaListagem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)
	mockClient := adsclientmocks.NewMockClient(ctrl)

	service := &service{
		integrationRepo: mockIntegrationRepo,
		syncLogRepo:     mockSyncLogRepo,
		registry:        ads.NewRegistryWith(&ads.Adapter{Provider: domain.ProviderMetaAds}),
		client:          mockClient,
		metrics:         testMetrics,
		lookbackDays:    30,
	}

	tests := []struct {
		name           string
		errorCount     int
		expectedCount  int
		expectedStatus domain.IntegrationStatus
	}{
		{
			name:           "Primeira falha mantém o status connected",
			errorCount:     0,
			expectedCount:  1,
			expectedStatus: domain.IntegrationStatusConnected,
		},
		{
			name:           "Quarta falha consecutiva ainda mantém connected",
			errorCount:     3,
			expectedCount:  4,
			expectedStatus: domain.IntegrationStatusConnected,
		},
		{
			name:           "Quinta falha consecutiva degrada para error",
			errorCount:     4,
			expectedCount:  5,
			expectedStatus: domain.IntegrationStatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integration := &domain.Integration{
				ID:         "int-2",
				UserID:     "user-1",
				Provider:   domain.ProviderMetaAds,
				Status:     domain.IntegrationStatusConnected,
				ErrorCount: tt.errorCount,
			}

			mockIntegrationRepo.EXPECT().GetByIDAndUser("int-2", "user-1").Return(integration, nil)
			mockSyncLogRepo.EXPECT().Create(gomock.Any()).Return(nil)
			mockClient.EXPECT().
				FetchCampaigns(gomock.Any(), gomock.Any(), integration).
				Return(nil, errors.New("provedor respondeu com status 500"))
			mockIntegrationRepo.EXPECT().
				MarkSyncFailure("int-2", "provedor respondeu com status 500", tt.expectedCount, tt.expectedStatus).
				Return(nil)
			mockSyncLogRepo.EXPECT().
				Finalize(gomock.Any(), domain.SyncStatusFailed, gomock.Any(), gomock.Any(), domain.SyncSummary{RecordsFailed: 1}, gomock.Any()).
				Return(nil)

			summary, err := service.RunSync(context.Background(), SyncParams{
				IntegrationID: "int-2",
				UserID:        "user-1",
				SyncType:      domain.SyncTypeScheduled,
			})

			assert.Nil(t, summary)
			assert.ErrorIs(t, err, ErrProviderUnavailable)
		})
	}
}

func TestRunSync_SincronizacaoDeCampanhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockMetricRepo := mocks.NewMockCampaignMetricRepository(ctrl)
	mockClient := adsclientmocks.NewMockClient(ctrl)

	service := &service{
		integrationRepo: mockIntegrationRepo,
		syncLogRepo:     mockSyncLogRepo,
		campaignRepo:    mockCampaignRepo,
		metricRepo:      mockMetricRepo,
		registry:        ads.NewRegistryWith(&ads.Adapter{Provider: domain.ProviderGoogleAds}),
		client:          mockClient,
		metrics:         testMetrics,
		lookbackDays:    30,
	}

	integration := &domain.Integration{
		ID:       "int-3",
		UserID:   "user-1",
		Provider: domain.ProviderGoogleAds,
		Status:   domain.IntegrationStatusConnected,
	}

	campaigns := []domain.ProviderCampaign{
		{ExternalID: "111", Name: "Busca Brand"},
		{ExternalID: "222", Name: "Display Remarketing"},
		{ExternalID: "333", Name: "Campanha Fantasma"},
	}

	mockIntegrationRepo.EXPECT().GetByIDAndUser("int-3", "user-1").Return(integration, nil)
	mockSyncLogRepo.EXPECT().Create(gomock.Any()).Return(nil)
	mockClient.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any(), integration).Return(campaigns, nil)

	// Campanha 111: métricas ok e casamento local encontrado
	mockClient.EXPECT().
		FetchMetrics(gomock.Any(), gomock.Any(), integration, "111", gomock.Any(), gomock.Any()).
		Return(domain.ProviderMetrics{Impressions: 100, Clicks: 10, Cost: 20}, nil)
	mockCampaignRepo.EXPECT().
		FindByUserAndNameLike("user-1", "Busca Brand").
		Return(&domain.Campaign{ID: "camp-local-1", UserID: "user-1"}, nil)
	mockMetricRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(sample *domain.CampaignMetricSample) error {
			assert.Equal(t, "camp-local-1", sample.CampaignID)
			assert.Equal(t, 100, sample.Impressions)
			return nil
		})

	// Campanha 222: falha na busca de métricas não aborta a sincronização
	mockClient.EXPECT().
		FetchMetrics(gomock.Any(), gomock.Any(), integration, "222", gomock.Any(), gomock.Any()).
		Return(domain.ProviderMetrics{}, errors.New("timeout"))

	// Campanha 333: sem correspondente local conta como updated
	mockClient.EXPECT().
		FetchMetrics(gomock.Any(), gomock.Any(), integration, "333", gomock.Any(), gomock.Any()).
		Return(domain.ProviderMetrics{}, nil)
	mockCampaignRepo.EXPECT().
		FindByUserAndNameLike("user-1", "Campanha Fantasma").
		Return(nil, nil)

	expectedSummary := domain.SyncSummary{
		RecordsFetched: 3,
		RecordsCreated: 1,
		RecordsUpdated: 1,
		RecordsFailed:  1,
	}
	mockSyncLogRepo.EXPECT().
		Finalize(gomock.Any(), domain.SyncStatusPartial, gomock.Any(), gomock.Any(), expectedSummary, nil).
		Return(nil)
	mockIntegrationRepo.EXPECT().MarkSyncSuccess("int-3", gomock.Any()).Return(nil)

	summary, err := service.RunSync(context.Background(), SyncParams{
		IntegrationID: "int-3",
		UserID:        "user-1",
		Provider:      domain.ProviderGoogleAds,
		SyncType:      domain.SyncTypeManual,
	})

	assert.NoError(t, err)
	assert.Equal(t, &expectedSummary, summary)
}

func TestRunSync_PeriodoCustomizado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockClient := adsclientmocks.NewMockClient(ctrl)

	service := &service{
		integrationRepo: mockIntegrationRepo,
		syncLogRepo:     mockSyncLogRepo,
		campaignRepo:    mockCampaignRepo,
		registry:        ads.NewRegistryWith(&ads.Adapter{Provider: domain.ProviderGoogleAds}),
		client:          mockClient,
		metrics:         testMetrics,
		lookbackDays:    30,
	}

	integration := &domain.Integration{
		ID:       "int-4",
		UserID:   "user-1",
		Provider: domain.ProviderGoogleAds,
		Status:   domain.IntegrationStatusConnected,
	}

	periodStart := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	mockIntegrationRepo.EXPECT().GetByIDAndUser("int-4", "user-1").Return(integration, nil)
	mockSyncLogRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(syncLog *domain.SyncLog) error {
			assert.Equal(t, periodStart, syncLog.PeriodStart)
			assert.Equal(t, periodEnd, syncLog.PeriodEnd)
			return nil
		})
	mockClient.EXPECT().
		FetchCampaigns(gomock.Any(), gomock.Any(), integration).
		Return([]domain.ProviderCampaign{{ExternalID: "111", Name: "Busca Brand"}}, nil)
	mockClient.EXPECT().
		FetchMetrics(gomock.Any(), gomock.Any(), integration, "111", "2026-07-01", "2026-07-31").
		Return(domain.ProviderMetrics{}, nil)
	mockCampaignRepo.EXPECT().
		FindByUserAndNameLike("user-1", "Busca Brand").
		Return(nil, nil)
	mockSyncLogRepo.EXPECT().
		Finalize(gomock.Any(), domain.SyncStatusCompleted, gomock.Any(), gomock.Any(), gomock.Any(), nil).
		Return(nil)
	mockIntegrationRepo.EXPECT().MarkSyncSuccess("int-4", gomock.Any()).Return(nil)

	summary, err := service.RunSync(context.Background(), SyncParams{
		IntegrationID: "int-4",
		UserID:        "user-1",
		Provider:      domain.ProviderGoogleAds,
		SyncType:      domain.SyncTypeManual,
		PeriodStart:   &periodStart,
		PeriodEnd:     &periodEnd,
	})

	assert.NoError(t, err)
	assert.Equal(t, &domain.SyncSummary{RecordsFetched: 1, RecordsUpdated: 1}, summary)
}
