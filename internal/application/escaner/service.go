// Package escaner mantiene sesiones de escaneo: cada sesión recibe fotogramas, guarda el último
// código leído y lo resuelve contra el catálogo.
package escaner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

// OrigenEscaner etiqueta las consultas disparadas por el escáner.
const OrigenEscaner = "escaner"

// FrameDecoder lee un código de un fotograma (infrastructure/barcode).
type FrameDecoder interface {
	DecodeFrame(data []byte) (string, bool, error)
}

// Lookuper resuelve una referencia (consulta.UseCase).
type Lookuper interface {
	Lookup(ctx context.Context, codigo, origen string) (consulta.Resultado, error)
}

// ScanObserver recibe el resultado de cada fotograma (métricas).
type ScanObserver interface {
	FrameDecoded(leido bool, err error)
}

// Sesion es una copia del estado de una sesión.
type Sesion struct {
	ID            string
	Codigo        string // último código leído; vacío si aún no hay lectura
	Seq           uint64 // crece con cada lectura
	CreadaEn      time.Time
	ActualizadaEn time.Time // última actividad; la caducidad se cuenta desde aquí
	Resultado     *consulta.Resultado

	ticket uint64 // última decodificación con código; solo esa puede confirmar su consulta
}

// Lectura es el resultado de procesar un fotograma.
type Lectura struct {
	Sesion Sesion
	Leido  bool
	Aviso  string // "Código escaneado: X" cuando hubo lectura
}

// Service guarda las sesiones en memoria y las caduca por inactividad.
type Service struct {
	decoder  FrameDecoder
	lookup   Lookuper
	ttl      time.Duration
	log      *logger.Logger
	observer ScanObserver
	now      func() time.Time

	mu       sync.Mutex
	sesiones map[string]*Sesion
}

// NewService construye el servicio. observer puede ser nil.
func NewService(decoder FrameDecoder, lookup Lookuper, ttl time.Duration, log *logger.Logger, observer ScanObserver) *Service {
	return &Service{
		decoder:  decoder,
		lookup:   lookup,
		ttl:      ttl,
		log:      log.Component("escaner"),
		observer: observer,
		now:      time.Now,
		sesiones: make(map[string]*Sesion),
	}
}

// SetClock reemplaza el reloj (tests).
func (s *Service) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Crear abre una sesión nueva y purga las caducadas.
func (s *Service) Crear() Sesion {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeLocked(now)

	ses := &Sesion{ID: uuid.NewString(), CreadaEn: now, ActualizadaEn: now}
	s.sesiones[ses.ID] = ses
	return *ses
}

// Obtener devuelve la sesión o ErrNotFound si no existe o caducó.
func (s *Service) Obtener(id string) (Sesion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ses, err := s.getLocked(id, s.now())
	if err != nil {
		return Sesion{}, err
	}
	return *ses, nil
}

// ProcesarFrame decodifica el fotograma. Si contiene un código, sustituye el último valor de la
// sesión y lanza una consulta nueva; si no, la sesión queda igual.
func (s *Service) ProcesarFrame(ctx context.Context, id string, frame []byte) (Lectura, error) {
	if _, err := s.Obtener(id); err != nil {
		return Lectura{}, err
	}
	if len(frame) == 0 {
		return Lectura{}, fmt.Errorf("%w: fotograma vacío", domain.ErrInvalidInput)
	}

	codigo, ok, err := s.decoder.DecodeFrame(frame)
	if s.observer != nil {
		s.observer.FrameDecoded(ok, err)
	}
	if err != nil {
		return Lectura{}, err
	}
	if !ok {
		ses, err := s.touch(id)
		return Lectura{Sesion: ses}, err
	}

	ticket, err := s.reservar(id)
	if err != nil {
		return Lectura{}, err
	}

	res, err := s.lookup.Lookup(ctx, codigo, OrigenEscaner)
	if err != nil {
		return Lectura{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	ses, err := s.getLocked(id, now)
	if err != nil {
		return Lectura{}, err
	}
	aviso := "Código escaneado: " + codigo
	if ses.ticket != ticket {
		// un fotograma posterior ya leyó otro código: su valor prevalece
		s.log.Debug().Str("sesion", id).Str("codigo", codigo).Msg("lectura superada")
		return Lectura{Sesion: *ses, Leido: true, Aviso: aviso}, nil
	}
	ses.Codigo = codigo
	ses.Seq++
	ses.ActualizadaEn = now
	ses.Resultado = &res

	s.log.Debug().Str("sesion", id).Str("codigo", codigo).Uint64("seq", ses.Seq).Msg("código escaneado")
	return Lectura{Sesion: *ses, Leido: true, Aviso: aviso}, nil
}

// reservar asigna el turno de la decodificación actual, antes de consultar.
func (s *Service) reservar(id string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ses, err := s.getLocked(id, s.now())
	if err != nil {
		return 0, err
	}
	ses.ticket++
	return ses.ticket, nil
}

// touch renueva la actividad de la sesión sin cambiar su último código.
func (s *Service) touch(id string) (Sesion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	ses, err := s.getLocked(id, now)
	if err != nil {
		return Sesion{}, err
	}
	ses.ActualizadaEn = now
	return *ses, nil
}

// Cerrar elimina la sesión.
func (s *Service) Cerrar(id string) {
	s.mu.Lock()
	delete(s.sesiones, id)
	s.mu.Unlock()
}

func (s *Service) getLocked(id string, now time.Time) (*Sesion, error) {
	ses, ok := s.sesiones[id]
	if !ok {
		return nil, fmt.Errorf("%w: sesión de escaneo %s", domain.ErrNotFound, id)
	}
	if s.expired(ses, now) {
		delete(s.sesiones, id)
		return nil, fmt.Errorf("%w: sesión de escaneo %s caducada", domain.ErrNotFound, id)
	}
	return ses, nil
}

func (s *Service) expired(ses *Sesion, now time.Time) bool {
	return s.ttl > 0 && now.Sub(ses.ActualizadaEn) > s.ttl
}

func (s *Service) purgeLocked(now time.Time) {
	for id, ses := range s.sesiones {
		if s.expired(ses, now) {
			delete(s.sesiones, id)
		}
	}
}
