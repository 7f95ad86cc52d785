package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPoll_UsesConfiguredBatchSize(t *testing.T) {
	resolver := mock.NewMockResolver(gomock.NewController(t))
	resolver.EXPECT().RefreshStale(gomock.Any(), 25).Return(3, nil)

	err := NewPollService(resolver, config.Workers{PollBatchSize: 25}, logger.Nop()).Poll(context.Background())
	assert.NoError(t, err)
}

func TestPoll_DefaultBatchSize(t *testing.T) {
	resolver := mock.NewMockResolver(gomock.NewController(t))
	resolver.EXPECT().RefreshStale(gomock.Any(), DefaultPollBatchSize).Return(0, nil)

	err := NewPollService(resolver, config.Workers{}, logger.Nop()).Poll(context.Background())
	assert.NoError(t, err)
}

func TestPoll_PropagatesSweepError(t *testing.T) {
	boom := errors.New("db down")
	resolver := mock.NewMockResolver(gomock.NewController(t))
	resolver.EXPECT().RefreshStale(gomock.Any(), gomock.Any()).Return(0, boom)

	err := NewPollService(resolver, config.Workers{}, logger.Nop()).Poll(context.Background())
	assert.ErrorIs(t, err, boom)
}
