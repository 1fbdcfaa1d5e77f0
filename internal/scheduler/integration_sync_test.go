package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stratify-app/marketing-sync-api/infrastructure/repository/mocks"
	"github.com/stratify-app/marketing-sync-api/internal/domain"
	"github.com/stratify-app/marketing-sync-api/internal/usecases/syncing"
	syncingmocks "github.com/stratify-app/marketing-sync-api/internal/usecases/syncing/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSyncAllIntegrations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIntegrationRepository(ctrl)
	mockSync := syncingmocks.NewMockService(ctrl)

	service := &IntegrationSyncService{
		config: IntegrationSyncConfig{
			MaxConcurrentJobs:   2,
			RequestDelaySeconds: 0,
			SyncEnabled:         true,
		},
		integrationRepo: mockRepo,
		syncService:     mockSync,
	}

	integrations := []*domain.Integration{
		{ID: "int-1", UserID: "user-1", Provider: domain.ProviderGoogleAds},
		{ID: "int-2", UserID: "user-2", Provider: domain.ProviderMetaAds},
	}

	mockRepo.EXPECT().ListByStatus(domain.IntegrationStatusConnected).Return(integrations, nil)

	// A varredura agendada repassa o provedor da própria integração
	providers := make(map[string]domain.IntegrationProvider)
	var providersMutex sync.Mutex
	mockSync.EXPECT().
		RunSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params syncing.SyncParams) (*domain.SyncSummary, error) {
			assert.Equal(t, domain.SyncTypeScheduled, params.SyncType)

			providersMutex.Lock()
			providers[params.IntegrationID] = params.Provider
			providersMutex.Unlock()

			return &domain.SyncSummary{}, nil
		}).
		Times(2)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.syncAllIntegrations(context.Background())
	}()

	// Leituras de status concorrentes com a varredura em andamento
	for i := 0; i < 50; i++ {
		_ = service.GetStatus()
	}
	<-done

	assert.Equal(t, domain.ProviderGoogleAds, providers["int-1"])
	assert.Equal(t, domain.ProviderMetaAds, providers["int-2"])

	status := service.GetStatus()
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
