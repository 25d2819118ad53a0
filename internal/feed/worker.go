package feed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/feed.go -package=mocks github.com/shenikar/emergency_dispatch_system/internal/feed PositionApplier,UpdatePublisher

// PositionApplier применяет отметку местоположения к хранилищу и индексу
type PositionApplier interface {
	ApplyPositionUpdate(ctx context.Context, update models.PositionUpdate) error
}

// Worker читает очередь отметок и применяет их
type Worker struct {
	redisClient *redis.Client
	applier     PositionApplier
	logger      *logrus.Logger
	queueKey    string
	retryDelay  time.Duration
}

func NewWorker(redisClient *redis.Client, applier PositionApplier, logger *logrus.Logger, queueKey string, retryDelay time.Duration) *Worker {
	return &Worker{
		redisClient: redisClient,
		applier:     applier,
		logger:      logger,
		queueKey:    queueKey,
		retryDelay:  retryDelay,
	}
}

// Start запускает горутину обработки очереди; останавливается по отмене ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.WithField("queue", w.queueKey).Info("Starting position feed worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping position feed worker.")
				return
			default:
				// LPUSH + BRPOP дает FIFO; 0 - ждать бесконечно
				result, err := w.redisClient.BRPop(ctx, 0, w.queueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) || ctx.Err() != nil {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop position update from Redis")
					w.sleep(ctx)
					continue
				}

				// result[0] - ключ, result[1] - значение
				w.handlePayload(ctx, result[1])
			}
		}
	}()
}

// handlePayload разбирает и применяет одну отметку. Битые отметки отбрасываются.
func (w *Worker) handlePayload(ctx context.Context, payload string) {
	var update models.PositionUpdate
	if err := json.Unmarshal([]byte(payload), &update); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal position update from Redis")
		return
	}

	log := w.logger.WithField("ambulance_id", update.AmbulanceID)
	if err := w.applier.ApplyPositionUpdate(ctx, update); err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrInvalidCoordinate) {
			log.WithError(err).Warn("Dropping position update")
			return
		}
		log.WithError(err).Error("Failed to apply position update")
		return
	}
	log.Debug("Position update processed")
}

func (w *Worker) sleep(ctx context.Context) {
	t := time.NewTimer(w.retryDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
