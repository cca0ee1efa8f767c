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
	"github.com/privyhq/privy/internal/store"
	"github.com/privyhq/privy/models"
)

func newTestRecordSvc(t *testing.T, ctrl *gomock.Controller) (RecordService, *mock.MockChatRepository, *mock.MockUserRepository, *mock.MockRecordCipher) {
	t.Helper()
	mockChats := mock.NewMockChatRepository(ctrl)
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockCipher := mock.NewMockRecordCipher(ctrl)

	svc := NewRecordService(mockChats, mockUsers, mockCipher, logger.Nop())
	return svc, mockChats, mockUsers, mockCipher
}

func TestCreateChat_TrimsTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChats, _, _ := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	mockChats.EXPECT().CreateChat(ctx, "u-1", "morning check-in").
		Return(models.Chat{ChatID: "c-1", Title: "morning check-in"}, nil)

	chat, err := svc.CreateChat(ctx, "u-1", "  morning check-in  ")
	require.NoError(t, err)
	assert.Equal(t, "c-1", chat.ChatID)
}

func TestAppendMessage_EncryptsBeforeStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChats, _, mockCipher := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "u-1", EncryptionSalt: "cafe"}
	parts := []models.MessagePart{{Type: "text", Text: "I want to talk about work stress"}}
	key := []byte("test-key-32-bytes-aaaaaaaaaaaaaa")
	env := models.Envelope{IV: "aXY=", Data: "ZGF0YQ==", Tag: "dGFn", V: models.EnvelopeVersion}

	gomock.InOrder(
		mockChats.EXPECT().FindChat(ctx, "c-1", "u-1").Return(models.Chat{ChatID: "c-1"}, nil),
		mockCipher.EXPECT().DeriveKey(validSecret, "cafe").Return(key),
		mockCipher.EXPECT().EncryptParts(parts, key).Return(env, nil),
		mockChats.EXPECT().AppendMessage(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, msg models.Message) (models.Message, error) {
				// the plaintext must not reach storage
				var stored models.Envelope
				require.NoError(t, json.Unmarshal(msg.Parts, &stored))
				assert.Equal(t, env, stored)
				assert.NotContains(t, string(msg.Parts), "work stress")
				msg.MessageID = "m-1"
				return msg, nil
			},
		),
	)

	view, err := svc.AppendMessage(ctx, user, validSecret, "c-1", models.AppendMessageRequest{Role: "user", Parts: parts})
	require.NoError(t, err)
	assert.Equal(t, "m-1", view.MessageID)
	assert.Equal(t, parts, view.Parts)
}

func TestAppendMessage_LazySaltProvisioning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChats, mockUsers, mockCipher := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "u-1"} // no salt yet
	parts := []models.MessagePart{{Type: "text", Text: "hi"}}
	key := []byte("test-key-32-bytes-aaaaaaaaaaaaaa")

	gomock.InOrder(
		mockChats.EXPECT().FindChat(ctx, "c-1", "u-1").Return(models.Chat{ChatID: "c-1"}, nil),
		mockCipher.EXPECT().GenerateSalt().Return("fresh-salt", nil),
		mockUsers.EXPECT().SetUserSalt(ctx, "u-1", "fresh-salt").Return(nil),
		// the re-read may observe another writer's salt; derive from what
		// the database holds, not from what this request generated
		mockUsers.EXPECT().GetUserSalt(ctx, "u-1").Return("winning-salt", nil),
		mockCipher.EXPECT().DeriveKey(validSecret, "winning-salt").Return(key),
		mockCipher.EXPECT().EncryptParts(parts, key).Return(models.Envelope{V: 1}, nil),
		mockChats.EXPECT().AppendMessage(ctx, gomock.Any()).Return(models.Message{MessageID: "m-1"}, nil),
	)

	_, err := svc.AppendMessage(ctx, user, validSecret, "c-1", models.AppendMessageRequest{Role: "user", Parts: parts})
	require.NoError(t, err)
}

func TestAppendMessage_ForeignChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChats, _, _ := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	mockChats.EXPECT().FindChat(ctx, "c-other", "u-1").Return(models.Chat{}, store.ErrChatNotFound)

	_, err := svc.AppendMessage(ctx, models.User{UserID: "u-1"}, validSecret, "c-other",
		models.AppendMessageRequest{Role: "user", Parts: []models.MessagePart{{Type: "text", Text: "x"}}})
	assert.ErrorIs(t, err, store.ErrChatNotFound)
}

func TestAppendMessage_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{UserID: "u-1"}
	parts := []models.MessagePart{{Type: "text", Text: "x"}}

	_, err := svc.AppendMessage(ctx, user, validSecret, "", models.AppendMessageRequest{Role: "user", Parts: parts})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.AppendMessage(ctx, user, validSecret, "c-1", models.AppendMessageRequest{Role: "system", Parts: parts})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.AppendMessage(ctx, user, validSecret, "c-1", models.AppendMessageRequest{Role: "user"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestListMessages_SafeDecryptsEveryRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChats, _, mockCipher := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "u-1", EncryptionSalt: "cafe"}
	key := []byte("test-key-32-bytes-aaaaaaaaaaaaaa")

	encrypted := json.RawMessage(`{"iv":"aXY=","data":"ZGF0YQ==","tag":"dGFn","v":1}`)
	legacy := json.RawMessage(`[{"type":"text","text":"old plaintext"}]`)

	gomock.InOrder(
		mockChats.EXPECT().FindChat(ctx, "c-1", "u-1").Return(models.Chat{ChatID: "c-1"}, nil),
		mockCipher.EXPECT().DeriveKey(validSecret, "cafe").Return(key),
		mockChats.EXPECT().ListMessages(ctx, "c-1").Return([]models.Message{
			{MessageID: "m-1", Role: "user", Parts: encrypted},
			{MessageID: "m-2", Role: "assistant", Parts: legacy},
		}, nil),
		mockCipher.EXPECT().SafeDecryptParts(encrypted, key).
			Return([]models.MessagePart{{Type: "text", Text: "decrypted"}}),
		mockCipher.EXPECT().SafeDecryptParts(legacy, key).
			Return([]models.MessagePart{{Type: "text", Text: "old plaintext"}}),
	)

	views, err := svc.ListMessages(ctx, user, validSecret, "c-1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "decrypted", views[0].Parts[0].Text)
	assert.Equal(t, "old plaintext", views[1].Parts[0].Text)
}

func TestListMessages_NoSaltMeansNilKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChats, _, mockCipher := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "u-1"} // never wrote an encrypted record
	legacy := json.RawMessage(`[{"type":"text","text":"hello"}]`)

	gomock.InOrder(
		mockChats.EXPECT().FindChat(ctx, "c-1", "u-1").Return(models.Chat{ChatID: "c-1"}, nil),
		mockChats.EXPECT().ListMessages(ctx, "c-1").Return([]models.Message{
			{MessageID: "m-1", Role: "user", Parts: legacy},
		}, nil),
		mockCipher.EXPECT().SafeDecryptParts(legacy, nil).
			Return([]models.MessagePart{{Type: "text", Text: "hello"}}),
	)

	views, err := svc.ListMessages(ctx, user, validSecret, "c-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
}
