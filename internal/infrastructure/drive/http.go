package drive

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

// HTTPSource descarga la hoja por HTTP GET en un único intento.
type HTTPSource struct {
	url    string
	ext    string
	client *http.Client
	log    *logger.Logger
}

// NewHTTPSource crea la fuente HTTP. ext es la extensión del temporal (".xlsx" o ".csv").
func NewHTTPSource(url, ext string, timeout time.Duration, log *logger.Logger) *HTTPSource {
	return &HTTPSource{
		url:    url,
		ext:    ext,
		client: &http.Client{Timeout: timeout},
		log:    log.Component("drive_http"),
	}
}

func (s *HTTPSource) Name() string { return "http" }

// Fetch descarga la hoja. Un estado distinto de 200 o una página HTML (archivo privado, aviso
// de virus de Drive o cuota agotada) se consideran error de descarga.
func (s *HTTPSource) Fetch(ctx context.Context) (string, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", noop, fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", noop, fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", noop, fmt.Errorf("%w: estado HTTP %d", domain.ErrDownload, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); strings.HasPrefix(strings.ToLower(ct), "text/html") {
		return "", noop, fmt.Errorf("%w: se recibió una página HTML en lugar de la hoja", domain.ErrDownload)
	}

	path, cleanup, err := writeTemp(resp.Body, s.ext)
	if err != nil {
		return "", noop, err
	}
	s.log.Debug().Str("archivo", path).Dur("duracion", time.Since(start)).Msg("hoja descargada")
	return path, cleanup, nil
}
