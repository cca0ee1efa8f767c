package service

import (
	"github.com/privyhq/privy/internal/config"
	"github.com/privyhq/privy/internal/crypto"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/store"
)

type Services struct {
	IdentityService IdentityService
	RecordService   RecordService
	MemoryService   MemoryService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	cipher := crypto.NewRecordCipher(cfg.App.MasterSalt, logger)

	return &Services{
		IdentityService: NewIdentityService(storages.UserRepository, storages.RateLimitRepository, cfg.App, logger),
		RecordService:   NewRecordService(storages.ChatRepository, storages.UserRepository, cipher, logger),
		MemoryService:   NewMemoryService(storages.MemoryRepository, storages.UserRepository, cipher, logger),
	}
}
