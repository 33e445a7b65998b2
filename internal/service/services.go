package service

import (
	"github.com/eddieoz/openxrypt/internal/crypto"
	"github.com/eddieoz/openxrypt/internal/guard"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/scanner"
	"github.com/eddieoz/openxrypt/internal/store"
)

type Services struct {
	KeyringService KeyringService
	EncryptService EncryptService
	ScanService    ScanService

	Guard *guard.Guard
}

func NewServices(keys store.KeyStore, engine crypto.Engine, g *guard.Guard, logger *logger.Logger) *Services {
	keyring := NewKeyringService(keys, engine, logger)
	return &Services{
		KeyringService: keyring,
		EncryptService: NewEncryptService(engine, keyring, logger),
		ScanService:    NewScanService(scanner.New(engine, keys, g, logger), logger),
		Guard:          g,
	}
}
