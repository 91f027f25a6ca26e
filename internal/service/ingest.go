package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
)

// Ingestor writes attachment payloads into object storage under a
// collision-free key derived from the upload field label, the current
// time in nanoseconds and the original file extension.
type Ingestor struct {
	storage model.Storage
	logger  *logger.Logger
	now     func() time.Time
}

func NewIngestor(storage model.Storage, logger *logger.Logger) *Ingestor {
	return &Ingestor{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Ingest stores the payload and returns the attachment reference to
// record. The payload is written before any record exists, so a failed
// ingestion never leaves a record pointing at nothing.
func (s *Ingestor) Ingest(ctx context.Context, payload io.Reader, originalName, fieldLabel string) (model.Attachment, error) {
	if payload == nil {
		return model.Attachment{}, fmt.Errorf("%w: attachment payload is empty", model.ErrValidation)
	}
	if fieldLabel == "" {
		return model.Attachment{}, fmt.Errorf("%w: attachment field label is empty", model.ErrValidation)
	}

	name := fmt.Sprintf("%s-%d%s", fieldLabel, s.now().UnixNano(), filepath.Ext(originalName))

	if err := s.storage.Upload(ctx, name, payload); err != nil {
		return model.Attachment{}, fmt.Errorf("%w: failed to upload attachment: %w", model.ErrIngestion, err)
	}

	s.logger.Debug("Ingest service: stored attachment", "file_name", name)

	return model.Attachment{
		FileName: name,
		FilePath: s.storage.Locate(name),
	}, nil
}
