package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/infradeploy/internal/domain"
)

func TestBulkResult_Outcome(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		result domain.BulkResult
		want   domain.Outcome
	}{
		{"empty", domain.BulkResult{}, domain.OutcomeEmpty},
		{"all ok", domain.BulkResult{"a": nil, "b": nil}, domain.OutcomeAllSucceeded},
		{"partial", domain.BulkResult{"a": nil, "b": boom}, domain.OutcomePartial},
		{"all failed", domain.BulkResult{"a": boom}, domain.OutcomeAllFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Outcome())
		})
	}
}

func TestBulkResult_SucceededFailedAreSorted(t *testing.T) {
	boom := errors.New("boom")
	r := domain.BulkResult{"c": nil, "a": boom, "b": nil, "d": boom}

	assert.Equal(t, []string{"b", "c"}, r.Succeeded())
	assert.Equal(t, []string{"a", "d"}, r.Failed())
	assert.False(t, r.AllOK())
	assert.ErrorIs(t, r.Err(), boom)
}

func TestBulkResult_ErrNilWhenAllOK(t *testing.T) {
	assert.NoError(t, domain.BulkResult{"a": nil}.Err())
	assert.NoError(t, domain.BulkResult{}.Err())
}

func TestReport(t *testing.T) {
	boom := errors.New("boom")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := domain.Report{
		Workflow: "start",
		Steps: []domain.WorkflowStep{
			{Name: "create_networks", Result: domain.BulkResult{"net-A": nil}},
			{Name: "start_containers", Result: domain.BulkResult{"c1": boom}},
		},
		StartedAt:  start,
		FinishedAt: start.Add(2 * time.Second),
	}

	assert.True(t, r.Failed())
	assert.ErrorIs(t, r.Err(), boom)
	assert.Equal(t, domain.BulkResult{"net-A": nil}, r.Step("create_networks"))
	assert.Nil(t, r.Step("missing"))
	assert.Equal(t, 2*time.Second, r.Duration())
}
