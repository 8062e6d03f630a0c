package usecase_test

import (
	"context"
	"errors"
	"testing"

	"job-board-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name   string
		db     usecase.Pinger
		redis  func(ctx context.Context) error
		status string
	}{
		{"all up", fakePinger{}, ok, usecase.StatusOK},
		{"redis down", fakePinger{}, down, usecase.StatusDegraded},
		{"redis not configured", fakePinger{}, nil, usecase.StatusDegraded},
		{"database down", fakePinger{err: errors.New("timeout")}, ok, usecase.StatusFail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := usecase.NewHealthUsecase(tc.db, tc.redis).Check(context.Background())
			assert.Equal(t, tc.status, report.Status)
		})
	}
}
