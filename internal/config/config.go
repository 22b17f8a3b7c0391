package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	BookingAPI BookingAPIConfig `toml:"booking_api"`
	Redis      RedisConfig      `toml:"redis"`
	Schedule   ScheduleConfig   `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки подключения к Postgres (черновики бронирований)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingAPIConfig настройки клиента внешнего backend API
type BookingAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// RedisConfig настройки Redis кэша доступности
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Address    string `toml:"address"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	PoolSize   int    `toml:"pool_size"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// DayHours рабочие часы одного дня недели в дробных часах
// (19.5 означает 19:30)
type DayHours struct {
	Start float64 `toml:"start"`
	End   float64 `toml:"end"`
}

// WeekHours рабочие часы по дням недели
type WeekHours struct {
	Sunday    DayHours `toml:"sunday"`
	Monday    DayHours `toml:"monday"`
	Tuesday   DayHours `toml:"tuesday"`
	Wednesday DayHours `toml:"wednesday"`
	Thursday  DayHours `toml:"thursday"`
	Friday    DayHours `toml:"friday"`
	Saturday  DayHours `toml:"saturday"`
}

// ScheduleConfig параметры сетки расписания.
// Публичные и административные часы намеренно раздельные таблицы:
// они отличаются (например, воскресенье 18:30 против 19:00)
// и задаются явно для каждого экрана.
type ScheduleConfig struct {
	SlotHeightPx       float64   `toml:"slot_height_px"`
	GranularityMinutes int       `toml:"granularity_minutes"`
	PublicHours        WeekHours `toml:"public_hours"`
	AdminHours         WeekHours `toml:"admin_hours"`
}

// Load загружает конфигурацию из TOML файла и валидирует её
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с дефолтными значениями.
// Часы работы соответствуют действующему расписанию барбершопа.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:    8080,
			ReadTimeout: 10,
			// Нулевой write timeout: SSE поток индикатора живет дольше
			// любого разумного таймаута записи
			WriteTimeout:    0,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "barbershop-front",
			Path:        "/metrics",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		BookingAPI: BookingAPIConfig{
			Timeout: 10,
		},
		Redis: RedisConfig{
			Address:    "localhost:6379",
			PoolSize:   10,
			TTLSeconds: 30,
		},
		Schedule: ScheduleConfig{
			SlotHeightPx:       48,
			GranularityMinutes: 30,
			PublicHours: WeekHours{
				Sunday:    DayHours{Start: 9, End: 18.5},
				Monday:    DayHours{Start: 8, End: 19.5},
				Tuesday:   DayHours{Start: 8, End: 19.5},
				Wednesday: DayHours{Start: 8, End: 19.5},
				Thursday:  DayHours{Start: 8, End: 19.5},
				Friday:    DayHours{Start: 8, End: 20.5},
				Saturday:  DayHours{Start: 8, End: 20.5},
			},
			AdminHours: WeekHours{
				Sunday:    DayHours{Start: 9, End: 19},
				Monday:    DayHours{Start: 8, End: 20},
				Tuesday:   DayHours{Start: 8, End: 20},
				Wednesday: DayHours{Start: 8, End: 20},
				Thursday:  DayHours{Start: 8, End: 20},
				Friday:    DayHours{Start: 8, End: 20},
				Saturday:  DayHours{Start: 8, End: 20},
			},
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in range 1-65535, got %d", c.Server.HTTPPort)
	}

	if c.BookingAPI.URL == "" {
		return fmt.Errorf("booking_api.url is required")
	}

	if c.BookingAPI.Timeout <= 0 {
		return fmt.Errorf("booking_api.timeout must be positive, got %d", c.BookingAPI.Timeout)
	}

	if c.Schedule.SlotHeightPx <= 0 {
		return fmt.Errorf("schedule.slot_height_px must be positive, got %f", c.Schedule.SlotHeightPx)
	}

	if c.Schedule.GranularityMinutes <= 0 || c.Schedule.GranularityMinutes > 60 {
		return fmt.Errorf("schedule.granularity_minutes must be in range 1-60, got %d", c.Schedule.GranularityMinutes)
	}

	for _, hours := range []struct {
		name string
		week WeekHours
	}{
		{"public_hours", c.Schedule.PublicHours},
		{"admin_hours", c.Schedule.AdminHours},
	} {
		for _, day := range []DayHours{
			hours.week.Sunday, hours.week.Monday, hours.week.Tuesday, hours.week.Wednesday,
			hours.week.Thursday, hours.week.Friday, hours.week.Saturday,
		} {
			if day.Start < 0 || day.End > 24 || day.Start >= day.End {
				return fmt.Errorf("schedule.%s: invalid day window %.2f-%.2f", hours.name, day.Start, day.End)
			}
		}
	}

	return nil
}
