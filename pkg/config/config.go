package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultDriveFileID identifica la hoja de artículos publicada en Google Drive.
const DefaultDriveFileID = "1cwcBZKZGKVrtQBBDhLfw3xy9c9O2lVeL"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Catalogo CatalogoConfig
	Escaner  EscanerConfig
	Docs     DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogoConfig indica de dónde se lee la hoja de artículos.
// Prioridad: Archivo local, URL explícita, Drive API (si hay DriveAPIKey), URL pública de Drive.
type CatalogoConfig struct {
	DriveFileID     string
	URL             string
	Archivo         string
	Formato         string // xlsx, csv; vacío = deducir de la extensión
	Hoja            string // vacío = primera hoja
	CSVCodificacion string
	DriveAPIKey     string
	Timeout         time.Duration
}

// DescargaURL devuelve la URL de descarga directa: la configurada o la pública de Drive.
func (c CatalogoConfig) DescargaURL() string {
	if c.URL != "" {
		return c.URL
	}
	return "https://drive.google.com/uc?export=download&confirm=t&id=" + c.DriveFileID
}

// EscanerConfig configuración de las sesiones de escaneo.
type EscanerConfig struct {
	SesionTTL time.Duration
}

// DocsConfig ubicación del swagger.json servido en /docs.
type DocsConfig struct {
	SwaggerPath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, CATALOGO_DRIVE_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "consulta-referencias"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Catalogo: CatalogoConfig{
			DriveFileID:     getString(v, "CATALOGO_DRIVE_ID", DefaultDriveFileID),
			URL:             getString(v, "CATALOGO_URL", ""),
			Archivo:         getString(v, "CATALOGO_ARCHIVO", ""),
			Formato:         strings.ToLower(getString(v, "CATALOGO_FORMATO", "")),
			Hoja:            getString(v, "CATALOGO_HOJA", ""),
			CSVCodificacion: strings.ToLower(getString(v, "CATALOGO_CSV_CODIFICACION", "utf-8")),
			DriveAPIKey:     getString(v, "DRIVE_API_KEY", ""),
			Timeout:         time.Duration(getInt(v, "DESCARGA_TIMEOUT_SEGUNDOS", 60)) * time.Second,
		},
		Escaner: EscanerConfig{
			SesionTTL: time.Duration(getInt(v, "ESCANER_SESION_MINUTOS", 30)) * time.Minute,
		},
		Docs: DocsConfig{
			SwaggerPath: getString(v, "DOCS_SWAGGER_PATH", "./docs/swagger.json"),
		},
	}

	switch cfg.Catalogo.Formato {
	case "", "xlsx", "csv":
	default:
		return nil, fmt.Errorf("CATALOGO_FORMATO inválido %q (xlsx o csv)", cfg.Catalogo.Formato)
	}
	if cfg.Catalogo.Archivo == "" && cfg.Catalogo.URL == "" && cfg.Catalogo.DriveFileID == "" {
		return nil, fmt.Errorf("sin origen de catálogo: defina CATALOGO_DRIVE_ID, CATALOGO_URL o CATALOGO_ARCHIVO")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return strings.TrimSpace(v.GetString(key))
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
