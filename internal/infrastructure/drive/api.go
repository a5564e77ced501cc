package drive

import (
	"context"
	"fmt"
	"time"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

// APISource descarga la hoja con la Drive API v3 usando una clave de API.
type APISource struct {
	fileID string
	ext    string
	srv    *gdrive.Service
	log    *logger.Logger
}

// NewAPISource crea el cliente de Drive. opts permite añadir opciones de cliente (endpoint en tests).
func NewAPISource(fileID, apiKey, ext string, log *logger.Logger, opts ...option.ClientOption) (*APISource, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	srv, err := gdrive.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("drive: crear servicio: %w", err)
	}
	return &APISource{fileID: fileID, ext: ext, srv: srv, log: log.Component("drive_api")}, nil
}

func (s *APISource) Name() string { return "drive_api" }

// Fetch descarga el contenido del archivo (alt=media).
func (s *APISource) Fetch(ctx context.Context) (string, func(), error) {
	start := time.Now()
	resp, err := s.srv.Files.Get(s.fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return "", noop, fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}
	defer resp.Body.Close()

	path, cleanup, err := writeTemp(resp.Body, s.ext)
	if err != nil {
		return "", noop, err
	}
	s.log.Debug().Str("file_id", s.fileID).Dur("duracion", time.Since(start)).Msg("hoja descargada por Drive API")
	return path, cleanup, nil
}
