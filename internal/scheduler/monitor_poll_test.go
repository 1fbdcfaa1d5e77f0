package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stratify-app/marketing-sync-api/internal/usecases/monitoring"
	monitoringmocks "github.com/stratify-app/marketing-sync-api/internal/usecases/monitoring/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonitor := monitoringmocks.NewMockService(ctrl)

	service := &MonitorPollService{
		config: MonitorPollConfig{
			DispatchLimit: 10,
			RunLimit:      5,
			Enabled:       true,
		},
		monitorService: mockMonitor,
	}

	mockMonitor.EXPECT().
		DispatchDue(gomock.Any(), 10).
		Return(&monitoring.DispatchResult{Queued: 3}, nil)
	mockMonitor.EXPECT().
		RunJobs(gomock.Any(), 5).
		Return(&monitoring.RunResult{Completed: 2, Failed: 1, Processed: 3}, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.poll(context.Background())
	}()

	// Leituras de status concorrentes com o ciclo em andamento
	for i := 0; i < 50; i++ {
		_ = service.GetStatus()
	}
	<-done

	status := service.GetStatus()
	assert.Equal(t, 3, status["last_queued"])
	assert.Equal(t, 2, status["last_completed"])
	assert.Equal(t, 1, status["last_failed"])
	assert.True(t, status["last_poll_success"].(bool))
	assert.False(t, status["last_poll_at"].(time.Time).IsZero())
}
