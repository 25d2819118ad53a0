package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/feed/mocks"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWorker - воркер без Redis: handlePayload его не использует
func newTestWorker(t *testing.T) (*Worker, *mocks.MockPositionApplier, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	applier := mocks.NewMockPositionApplier(ctrl)

	logs := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	return NewWorker(nil, applier, logger, "position_updates", time.Millisecond), applier, logs
}

func TestHandlePayload_AppliesUpdate(t *testing.T) {
	// Подготовка
	w, applier, _ := newTestWorker(t)
	ctx := context.Background()
	update := models.PositionUpdate{
		AmbulanceID: uuid.New(),
		Location:    models.Point{Longitude: 37.6, Latitude: 55.7},
		RecordedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(update)
	require.NoError(t, err)

	// Ожидания
	applier.EXPECT().ApplyPositionUpdate(ctx, update).Return(nil).Times(1)

	// Действие
	w.handlePayload(ctx, string(payload))
}

func TestHandlePayload_DropsMalformedJSON(t *testing.T) {
	w, _, logs := newTestWorker(t)

	// Применение не вызывается
	w.handlePayload(context.Background(), "{not json")

	assert.Contains(t, logs.String(), "Failed to unmarshal position update")
}

func TestHandlePayload_LogsApplyFailures(t *testing.T) {
	w, applier, logs := newTestWorker(t)
	ctx := context.Background()
	update := models.PositionUpdate{AmbulanceID: uuid.New(), Location: models.Point{Longitude: 1, Latitude: 1}}
	payload, _ := json.Marshal(update)

	applier.EXPECT().ApplyPositionUpdate(ctx, update).Return(models.ErrNotFound).Times(1)
	w.handlePayload(ctx, string(payload))
	assert.Contains(t, logs.String(), "Dropping position update")

	applier.EXPECT().ApplyPositionUpdate(ctx, update).Return(errors.New("db down")).Times(1)
	w.handlePayload(ctx, string(payload))
	assert.Contains(t, logs.String(), "Failed to apply position update")
}

func TestEncodeUpdates(t *testing.T) {
	updates := []models.PositionUpdate{
		{AmbulanceID: uuid.New(), Location: models.Point{Longitude: 1, Latitude: 2}},
		{AmbulanceID: uuid.New(), Location: models.Point{Longitude: 3, Latitude: 4}},
	}

	payloads, err := encodeUpdates(updates)

	require.NoError(t, err)
	require.Len(t, payloads, 2)
	var decoded models.PositionUpdate
	require.NoError(t, json.Unmarshal(payloads[1].([]byte), &decoded))
	assert.Equal(t, updates[1].AmbulanceID, decoded.AmbulanceID)
	assert.Equal(t, updates[1].Location, decoded.Location)
}

func TestPublish_EmptyBatchIsNoop(t *testing.T) {
	p := NewRedisUpdatePublisher(nil, "position_updates")

	assert.NoError(t, p.Publish(context.Background()))
}
