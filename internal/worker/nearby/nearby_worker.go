package nearby

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/config"
	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/domain/repository"
	"github.com/mediplus/geosearch/internal/pkg/utils"
	"github.com/mediplus/geosearch/internal/worker"
)

const (
	defaultBatchSize = 20
	defaultMaxResult = 10
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second
)

const (
	errMissingLocation = "missing coordinates"
	errInvalidLocation = "invalid coordinates"
)

// EstablishmentSearcher - поиск учреждений вокруг точки
type EstablishmentSearcher interface {
	SearchEstablishments(ctx context.Context, center domain.GeoPoint, radius *int, query string) []domain.Establishment
}

// NearbyWorker отвечает на запросы "учреждения рядом" из Redis Streams
type NearbyWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	searcher     EstablishmentSearcher
	consumerName string
	batchSize    int
	maxResults   int
}

// NewNearbyWorker создает новый NearbyWorker
func NewNearbyWorker(
	streamRepo repository.StreamRepository,
	searcher EstablishmentSearcher,
	cfg config.WorkerConfig,
	logger *zap.Logger,
) *NearbyWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResult
	}

	return &NearbyWorker{
		BaseWorker:   worker.NewBaseWorker("establishment-nearby", cfg.ConsumerGroup, logger),
		streamRepo:   streamRepo,
		searcher:     searcher,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxResults:   maxResults,
	}
}

// Start запускает воркер
func (w *NearbyWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting NearbyWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamNearbyRequest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.sleep(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.sleep(ctx, emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений.
func (w *NearbyWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamNearbyRequest,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	processedIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamNearbyRequest, w.ConsumerGroup(), msg.ID)
			continue
		}

		done := w.handle(ctx, event)
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamNearbyDone, done); err != nil {
			// не подтверждаем, сообщение останется в pending
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			continue
		}

		processedIDs = append(processedIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamNearbyRequest, w.ConsumerGroup(), processedIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("answered", len(processedIDs)))

	return len(messages), nil
}

// handle выполняет поиск для одного запроса и формирует ответ
func (w *NearbyWorker) handle(ctx context.Context, event *domain.NearbyRequestEvent) *domain.NearbyDoneEvent {
	if !event.HasLocation() {
		return failedEvent(event.RequestID, errMissingLocation)
	}
	if !utils.ValidateCoordinates(*event.Lat, *event.Lon) {
		return failedEvent(event.RequestID, errInvalidLocation)
	}

	// radius_m отсутствует в событии - радиус по умолчанию
	var radius *int
	if event.RadiusM > 0 {
		radius = &event.RadiusM
	}

	center := domain.GeoPoint{Lat: *event.Lat, Lon: *event.Lon}
	establishments := w.searcher.SearchEstablishments(ctx, center, radius, event.Query)

	return &domain.NearbyDoneEvent{
		RequestID:      event.RequestID,
		Establishments: establishments[:min(len(establishments), w.limit(event.Limit))],
		Total:          len(establishments),
	}
}

func failedEvent(requestID uuid.UUID, reason string) *domain.NearbyDoneEvent {
	return &domain.NearbyDoneEvent{
		RequestID:      requestID,
		Establishments: []domain.Establishment{},
		Error:          reason,
	}
}

func (w *NearbyWorker) limit(requested int) int {
	if requested <= 0 || requested > w.maxResults {
		return w.maxResults
	}
	return requested
}

func (w *NearbyWorker) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-ctx.Done():
	case <-w.StopChan():
	}
}

// parseMessage парсит сообщение из стрима в NearbyRequestEvent
func parseMessage(msg domain.StreamMessage) (*domain.NearbyRequestEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.NearbyRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.RequestID == uuid.Nil {
		return nil, fmt.Errorf("missing request_id")
	}

	return &event, nil
}
