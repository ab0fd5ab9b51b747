package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

func TestGoalHandler_List(t *testing.T) {
	h := NewGoalHandler(&goalServiceStub{
		listFn: func(context.Context) ([]*domain.Goal, error) {
			return []*domain.Goal{
				{ID: "g-1", Name: "Emergency Fund", Amount: decimal.NewFromInt(100000), Current: decimal.NewFromInt(45000), Timeline: "1 year"},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListGoalsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Goals, 1)
	assert.Equal(t, 1, resp.Total)
	assert.True(t, decimal.NewFromInt(45).Equal(resp.Goals[0].PercentComplete))
}

func TestGoalHandler_Create(t *testing.T) {
	var captured usecase.CreateGoalInput
	h := NewGoalHandler(&goalServiceStub{
		createFn: func(_ context.Context, input usecase.CreateGoalInput) (*domain.Goal, error) {
			captured = input
			if input.Timeline == "" {
				return nil, domain.ErrInvalidTimeline
			}
			return &domain.Goal{ID: "g-9", Name: input.Name, Amount: input.Amount, Timeline: input.Timeline}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Create(rec, newJSONRequest(http.MethodPost, "/api/v1/goals", `{"name":"Car","amount":600000,"timeline":"5 years"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Car", captured.Name)
	assert.Nil(t, captured.Selected)

	var resp dto.GoalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.MonthlyContribution)
	assert.True(t, decimal.NewFromInt(10000).Equal(*resp.MonthlyContribution))

	rec = httptest.NewRecorder()
	h.Create(rec, newJSONRequest(http.MethodPost, "/api/v1/goals", `{"name":"Car","amount":1}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoalHandler_Update(t *testing.T) {
	var gotID string
	var gotInput usecase.UpdateGoalInput
	h := NewGoalHandler(&goalServiceStub{
		updateFn: func(_ context.Context, id string, input usecase.UpdateGoalInput) (*domain.Goal, error) {
			gotID, gotInput = id, input
			if id == "missing" {
				return nil, domain.ErrGoalNotFound
			}
			return &domain.Goal{ID: id, Selected: *input.Selected}, nil
		},
	})

	req := withURLParams(newJSONRequest(http.MethodPut, "/api/v1/goals/g-1", `{"selected":false}`), map[string]string{"id": "g-1"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "g-1", gotID)
	require.NotNil(t, gotInput.Selected)
	assert.False(t, *gotInput.Selected)
	assert.Nil(t, gotInput.Name)

	req = withURLParams(newJSONRequest(http.MethodPut, "/api/v1/goals/missing", `{"selected":true}`), map[string]string{"id": "missing"})
	rec = httptest.NewRecorder()
	h.Update(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGoalHandler_Delete(t *testing.T) {
	h := NewGoalHandler(&goalServiceStub{
		deleteFn: func(_ context.Context, id string) error {
			if id != "g-1" {
				return domain.ErrGoalNotFound
			}
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.Delete(rec, withURLParams(httptest.NewRequest(http.MethodDelete, "/api/v1/goals/g-1", nil), map[string]string{"id": "g-1"}))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Delete(rec, withURLParams(httptest.NewRequest(http.MethodDelete, "/api/v1/goals/g-2", nil), map[string]string{"id": "g-2"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
