package service

import (
	"context"

	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/scanner"
	"github.com/eddieoz/openxrypt/models"
)

type scanService struct {
	scanner *scanner.Scanner

	logger *logger.Logger
}

func NewScanService(s *scanner.Scanner, logger *logger.Logger) ScanService {
	return &scanService{scanner: s, logger: logger}
}

func (s *scanService) Scan(ctx context.Context, snap models.PageSnapshot) (models.PageSnapshot, scanner.Stats) {
	return s.scanner.Scan(ctx, snap)
}
