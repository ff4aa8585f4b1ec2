package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-trading-hub/internal/models"
	"github.com/sbilibin2017/gw-trading-hub/internal/services"
)

func TestItemService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewItemService(mockReader, mockWriter, mockKafka)

	in := services.CreateItemInput{
		Username:    "alice",
		Picture1:    "p1.png",
		Picture2:    "p2.png",
		Picture3:    "p3.png",
		Name:        "Widget",
		Description: "A widget",
	}
	saved := &models.ItemDB{
		ItemID:      uuid.New(),
		Username:    "alice",
		Picture1:    "p1.png",
		Picture2:    "p2.png",
		Picture3:    "p3.png",
		Name:        "Widget",
		Description: "A widget",
	}

	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item models.ItemDB) (*models.ItemDB, error) {
			assert.Equal(t, "alice", item.Username)
			assert.Equal(t, "Widget", item.Name)
			assert.Nil(t, item.UpdatedAt)
			return saved, nil
		})
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	item, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, saved.ItemID, item.ItemID)
}

func TestItemService_Create_WriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)

	// nil Kafka writer: audit publishing is skipped entirely
	svc := services.NewItemService(mockReader, mockWriter, nil)

	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db error"))

	item, err := svc.Create(context.Background(), services.CreateItemInput{Username: "alice"})
	assert.EqualError(t, err, "db error")
	assert.Nil(t, item)
}

func TestItemService_Create_KafkaFailureDoesNotFailCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewItemService(mockReader, mockWriter, mockKafka)

	saved := &models.ItemDB{ItemID: uuid.New(), Username: "alice"}
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saved, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	item, err := svc.Create(context.Background(), services.CreateItemInput{Username: "alice"})
	assert.NoError(t, err)
	assert.Equal(t, saved.ItemID, item.ItemID)
}

func TestItemService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	tests := []struct {
		name       string
		itemID     string
		rows       int64
		writerErr  error
		skipWriter bool
		skipKafka  bool
		wantErr    error
	}{
		{
			name:   "successful update",
			itemID: itemID.String(),
			rows:   1,
		},
		{
			name:   "whitespace around id is trimmed",
			itemID: "  " + itemID.String() + "  ",
			rows:   1,
		},
		{
			name:       "malformed id",
			itemID:     "not-a-uuid",
			skipWriter: true,
			skipKafka:  true,
			wantErr:    services.ErrInvalidItemID,
		},
		{
			name:      "item not found",
			itemID:    itemID.String(),
			rows:      0,
			skipKafka: true,
			wantErr:   services.ErrItemNotFound,
		},
		{
			name:      "writer error",
			itemID:    itemID.String(),
			writerErr: errors.New("db error"),
			skipKafka: true,
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockItemReader(ctrl)
			mockWriter := services.NewMockItemWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			svc := services.NewItemService(mockReader, mockWriter, mockKafka)

			if !tt.skipWriter {
				mockWriter.EXPECT().
					Update(gomock.Any(), itemID, "Widget", "new description").
					Return(tt.rows, tt.writerErr)
			}
			if !tt.skipKafka {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Update(context.Background(), tt.itemID, "Widget", "new description")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	tests := []struct {
		name       string
		itemID     string
		rows       int64
		writerErr  error
		skipWriter bool
		skipKafka  bool
		wantErr    error
	}{
		{
			name:   "successful delete",
			itemID: itemID.String(),
			rows:   1,
		},
		{
			name:       "malformed id",
			itemID:     "42",
			skipWriter: true,
			skipKafka:  true,
			wantErr:    services.ErrInvalidItemID,
		},
		{
			name:      "item not found",
			itemID:    itemID.String(),
			rows:      0,
			skipKafka: true,
			wantErr:   services.ErrItemNotFound,
		},
		{
			name:      "writer error",
			itemID:    itemID.String(),
			writerErr: errors.New("db error"),
			skipKafka: true,
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockItemReader(ctrl)
			mockWriter := services.NewMockItemWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			svc := services.NewItemService(mockReader, mockWriter, mockKafka)

			if !tt.skipWriter {
				mockWriter.EXPECT().
					Delete(gomock.Any(), itemID).
					Return(tt.rows, tt.writerErr)
			}
			if !tt.skipKafka {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Delete(context.Background(), tt.itemID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemService_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)

	svc := services.NewItemService(mockReader, mockWriter, nil)

	items := []models.ItemDB{
		{ItemID: uuid.New(), Username: "alice", Name: "Widget"},
		{ItemID: uuid.New(), Username: "bob", Name: "Gadget"},
	}
	mockReader.EXPECT().ListAll(gomock.Any()).Return(items, nil)

	got, err := svc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestItemService_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)

	svc := services.NewItemService(mockReader, mockWriter, nil)

	items := []models.ItemDB{{ItemID: uuid.New(), Username: "alice", Name: "Widget"}}
	mockReader.EXPECT().ListByUsername(gomock.Any(), "alice").Return(items, nil)

	got, err := svc.ListForUser(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, items, got)

	mockReader.EXPECT().ListByUsername(gomock.Any(), "nobody").Return([]models.ItemDB{}, nil)

	got, err = svc.ListForUser(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Empty(t, got)
}
