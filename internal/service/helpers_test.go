package service_test

import (
	"context"
	"sync"
	"time"

	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/mocks"
	"marina-guard-backend/internal/service"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func guard() service.Caller {
	return service.Caller{UserID: uuid.New(), Role: models.RoleGuard}
}

func supervisor() service.Caller {
	return service.Caller{UserID: uuid.New(), Role: models.RoleSupervisor}
}

func admin() service.Caller {
	return service.Caller{UserID: uuid.New(), Role: models.RoleAdmin}
}

func superAdmin() service.Caller {
	return service.Caller{UserID: uuid.New(), Role: models.RoleSuperAdmin}
}

func intPtr(v int) *int { return &v }

func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

func timePtr(v time.Time) *time.Time { return &v }

// expectTx makes the transactor mock run the unit of work inline
func expectTx(tx *mocks.MockTransactorInterface) *gomock.Call {
	return tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

type publishedEvent struct {
	Name    string
	Payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Name: event, Payload: payload})
	return nil
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Name)
	}
	return out
}

type countingMetrics struct {
	clockIns           map[models.Role]int
	clockOuts          map[string]int
	shiftsGenerated    int
	incidentsReviewed  int
	checklistSubmitted int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{clockIns: map[models.Role]int{}, clockOuts: map[string]int{}}
}

func (m *countingMetrics) ClockIn(role models.Role) { m.clockIns[role]++ }
func (m *countingMetrics) ClockOut(kind string)     { m.clockOuts[kind]++ }
func (m *countingMetrics) ShiftsGenerated(n int)    { m.shiftsGenerated += n }
func (m *countingMetrics) IncidentReviewed()        { m.incidentsReviewed++ }
func (m *countingMetrics) ChecklistSubmitted()      { m.checklistSubmitted++ }
