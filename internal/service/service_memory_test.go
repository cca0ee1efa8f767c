package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/mock"
	"github.com/privyhq/privy/models"
)

func newTestMemorySvc(t *testing.T, ctrl *gomock.Controller) (MemoryService, *mock.MockMemoryRepository, *mock.MockUserRepository, *mock.MockRecordCipher) {
	t.Helper()
	mockMemories := mock.NewMockMemoryRepository(ctrl)
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockCipher := mock.NewMockRecordCipher(ctrl)

	svc := NewMemoryService(mockMemories, mockUsers, mockCipher, logger.Nop())
	return svc, mockMemories, mockUsers, mockCipher
}

func TestSaveMemory_EncryptsContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMemories, _, mockCipher := newTestMemorySvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "u-1", EncryptionSalt: "cafe"}
	key := []byte("test-key-32-bytes-aaaaaaaaaaaaaa")
	env := models.Envelope{IV: "aXY=", Data: "ZGF0YQ==", Tag: "dGFn", V: models.EnvelopeVersion}

	gomock.InOrder(
		mockCipher.EXPECT().DeriveKey(validSecret, "cafe").Return(key),
		mockCipher.EXPECT().EncryptText("prefers morning sessions", key).Return(env, nil),
		mockMemories.EXPECT().SaveMemory(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, mem models.Memory) (models.Memory, error) {
				var stored models.Envelope
				require.NoError(t, json.Unmarshal(mem.Content, &stored))
				assert.Equal(t, env, stored)
				assert.Equal(t, "insight", mem.ContentType)
				mem.MemoryID = "mem-1"
				return mem, nil
			},
		),
	)

	view, err := svc.SaveMemory(ctx, user, validSecret, models.SaveMemoryRequest{Content: "  prefers morning sessions  "})
	require.NoError(t, err)
	assert.Equal(t, "mem-1", view.MemoryID)
	assert.Equal(t, "prefers morning sessions", view.Content)
}

func TestSaveMemory_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestMemorySvc(t, ctrl)

	_, err := svc.SaveMemory(context.Background(), models.User{UserID: "u-1"}, validSecret, models.SaveMemoryRequest{Content: "   "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestListMemories_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMemories, _, mockCipher := newTestMemorySvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "u-1", EncryptionSalt: "cafe"}
	key := []byte("test-key-32-bytes-aaaaaaaaaaaaaa")

	mockCipher.EXPECT().DeriveKey(validSecret, "cafe").Return(key).Times(2)

	// zero selects the default
	mockMemories.EXPECT().ListMemories(ctx, "u-1", 5).Return(nil, nil)
	_, err := svc.ListMemories(ctx, user, validSecret, 0)
	require.NoError(t, err)

	// anything above the cap is clamped
	mockMemories.EXPECT().ListMemories(ctx, "u-1", 20).Return(nil, nil)
	_, err = svc.ListMemories(ctx, user, validSecret, 500)
	require.NoError(t, err)
}

func TestListMemories_SafeDecrypts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMemories, _, mockCipher := newTestMemorySvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "u-1", EncryptionSalt: "cafe"}
	key := []byte("test-key-32-bytes-aaaaaaaaaaaaaa")
	stored := json.RawMessage(`{"iv":"aXY=","data":"ZGF0YQ==","tag":"dGFn","v":1}`)

	gomock.InOrder(
		mockCipher.EXPECT().DeriveKey(validSecret, "cafe").Return(key),
		mockMemories.EXPECT().ListMemories(ctx, "u-1", 5).Return([]models.Memory{
			{MemoryID: "mem-1", Content: stored, ContentType: "insight"},
		}, nil),
		mockCipher.EXPECT().SafeDecryptText(stored, key).Return("prefers morning sessions"),
	)

	views, err := svc.ListMemories(ctx, user, validSecret, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "prefers morning sessions", views[0].Content)
}

func TestDeleteMemories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMemories, _, _ := newTestMemorySvc(t, ctrl)
	ctx := context.Background()

	mockMemories.EXPECT().DeleteUserMemories(ctx, "u-1").Return(nil)
	require.NoError(t, svc.DeleteMemories(ctx, "u-1"))

	assert.ErrorIs(t, svc.DeleteMemories(ctx, ""), ErrInvalidDataProvided)
}
