package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Store  StoreConfig
	DB     DBConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Clock  ClockConfig
	Kafka  KafkaConfig
	Auth   AuthConfig
	LogLvl string
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona horaria del reloj de pared de las sucursales
}

// Location resuelve la zona horaria configurada; si no existe usa time.Local.
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Drivers de persistencia soportados.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// StoreConfig selecciona el adaptador de persistencia al arrancar el proceso.
type StoreConfig struct {
	Driver string // memory | postgres
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	Migrate     bool // aplica las migraciones embebidas al arrancar
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ClockConfig controla el reloj simulado ("viaje en el tiempo" para demos y pruebas).
type ClockConfig struct {
	Simulated bool
	Start     string // RFC3339; vacío = lunes de la semana actual a las 10:15
}

// KafkaConfig publicación de eventos de actividades. Sin brokers no se publica nada.
type KafkaConfig struct {
	Brokers       []string
	ActivityTopic string
}

// Enabled indica si hay brokers configurados.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

// AuthConfig parámetros de credenciales.
type AuthConfig struct {
	BcryptCost                  int
	DefaultCollaboratorPassword string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_DRIVER, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "gestor-sucursal"),
			Timezone: getString(v, "APP_TIMEZONE", "America/Mexico_City"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", StoreMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gestor_sucursal"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			Migrate:     getBool(v, "DB_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "gestor-sucursal"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		},
		Clock: ClockConfig{
			Simulated: getBool(v, "CLOCK_SIMULATED", false),
			Start:     getString(v, "CLOCK_START", ""),
		},
		Kafka: KafkaConfig{
			Brokers:       splitAndTrim(getString(v, "KAFKA_BROKERS", "")),
			ActivityTopic: getString(v, "KAFKA_ACTIVITY_TOPIC", "sucursal.activities"),
		},
		Auth: AuthConfig{
			BcryptCost:                  getInt(v, "AUTH_BCRYPT_COST", 10),
			DefaultCollaboratorPassword: getString(v, "AUTH_DEFAULT_COLLABORATOR_PASSWORD", "123"),
		},
		LogLvl: getString(v, "LOG_LEVEL", "info"),
	}

	if cfg.Store.Driver != StoreMemory && cfg.Store.Driver != StorePostgres {
		return nil, fmt.Errorf("config: STORE_DRIVER inválido %q (memory|postgres)", cfg.Store.Driver)
	}
	if cfg.JWT.Secret == "" {
		if cfg.App.Env != "development" {
			return nil, fmt.Errorf("config: JWT_SECRET es obligatorio fuera de development")
		}
		cfg.JWT.Secret = "dev-secret-change-me"
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
