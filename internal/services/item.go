package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
)

var (
	// ErrItemNotFound is returned when no item exists with the given identifier.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidItemID is returned when an identifier is not a well-formed uuid.
	ErrInvalidItemID = errors.New("invalid item id")
)

// ItemReader defines read operations for items.
type ItemReader interface {
	ListAll(ctx context.Context) ([]models.ItemDB, error)
	ListByUsername(ctx context.Context, username string) ([]models.ItemDB, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, item models.ItemDB) (*models.ItemDB, error)
	Update(ctx context.Context, itemID uuid.UUID, name, description string) (int64, error)
	Delete(ctx context.Context, itemID uuid.UUID) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CreateItemInput carries the caller-supplied fields for item creation.
// All fields are accepted as opaque strings; nothing is validated.
type CreateItemInput struct {
	Username    string
	Picture1    string
	Picture2    string
	Picture3    string
	Name        string
	Description string
}

// ItemService handles catalog item operations and audit publishing.
type ItemService struct {
	reader      ItemReader
	writer      ItemWriter
	kafkaWriter KafkaWriter
}

// NewItemService creates a new ItemService. kafkaWriter may be nil, in which
// case audit events are skipped.
func NewItemService(reader ItemReader, writer ItemWriter, kafkaWriter KafkaWriter) *ItemService {
	return &ItemService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an item audit event to Kafka.
func (svc *ItemService) publishEvent(ctx context.Context, event models.ItemEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping audit event", "item_id", event.ItemID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "item_id", event.ItemID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ItemID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "item_id", event.ItemID, "error", err)
	} else {
		logger.Log.Infow("audit event published", "item_id", event.ItemID, "operation", event.Operation)
	}
}

// ListAll returns every item regardless of owner, in insertion order.
func (svc *ItemService) ListAll(ctx context.Context) ([]models.ItemDB, error) {
	items, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list items", "error", err)
		return nil, err
	}
	return items, nil
}

// ListForUser returns the items owned by username, in insertion order.
func (svc *ItemService) ListForUser(ctx context.Context, username string) ([]models.ItemDB, error) {
	items, err := svc.reader.ListByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list items for user", "username", username, "error", err)
		return nil, err
	}
	return items, nil
}

// Create persists a new item and publishes an audit event.
func (svc *ItemService) Create(ctx context.Context, in CreateItemInput) (*models.ItemDB, error) {
	item := models.ItemDB{
		Username:    in.Username,
		Picture1:    in.Picture1,
		Picture2:    in.Picture2,
		Picture3:    in.Picture3,
		Name:        in.Name,
		Description: in.Description,
	}

	saved, err := svc.writer.Save(ctx, item)
	if err != nil {
		logger.Log.Errorw("failed to save item", "username", in.Username, "error", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.ItemEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		ItemID:    saved.ItemID.String(),
		Username:  saved.Username,
		Operation: "create",
	})

	return saved, nil
}

// Update overwrites name and description of an item and stamps its update
// timestamp. Pictures and owner are untouched.
func (svc *ItemService) Update(ctx context.Context, itemID, name, description string) error {
	id, err := uuid.Parse(strings.TrimSpace(itemID))
	if err != nil {
		return ErrInvalidItemID
	}

	rows, err := svc.writer.Update(ctx, id, name, description)
	if err != nil {
		logger.Log.Errorw("failed to update item", "item_id", id, "error", err)
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}

	svc.publishEvent(ctx, models.ItemEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		ItemID:    id.String(),
		Operation: "update",
	})

	return nil
}

// Delete removes an item record. The delete is hard.
func (svc *ItemService) Delete(ctx context.Context, itemID string) error {
	id, err := uuid.Parse(strings.TrimSpace(itemID))
	if err != nil {
		return ErrInvalidItemID
	}

	rows, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete item", "item_id", id, "error", err)
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}

	svc.publishEvent(ctx, models.ItemEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		ItemID:    id.String(),
		Operation: "delete",
	})

	return nil
}
