package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"studyhub/internal/platform/validate"
)

const (
	DefaultExamDate      = "2026-05-04T14:00:00+05:30"
	DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"
	fileName             = "studyhub.yaml"
)

type Config struct {
	DataDir       string        `validate:"required"`
	DBPath        string        `validate:"required"`
	LogPath       string        `validate:"required"`
	JournalDir    string        `validate:"required"`
	ExamDate      time.Time     `validate:"required"`
	DictionaryURL string        `validate:"required,url"`
	LookupTimeout time.Duration `validate:"gt=0"`
	ReminderAt    string        `validate:"required,len=5"`
	Timezone      string
	LogLevel      string        `validate:"oneof=debug info warn error"`
	PomodoroWork  time.Duration `validate:"gt=0"`
	PomodoroBreak time.Duration `validate:"gt=0"`
}

type Options struct {
	DataDir  string
	FilePath string
}

// fileConfig mirrors studyhub.yaml. Empty fields keep the defaults.
type fileConfig struct {
	ExamDate      string `yaml:"exam_date"`
	DictionaryURL string `yaml:"dictionary_url"`
	LookupTimeout string `yaml:"lookup_timeout"`
	ReminderAt    string `yaml:"reminder_at"`
	Timezone      string `yaml:"timezone"`
	LogLevel      string `yaml:"log_level"`
	Pomodoro      struct {
		Work  string `yaml:"work"`
		Break string `yaml:"break"`
	} `yaml:"pomodoro"`
}

// Load resolves configuration from defaults, then the YAML file, then the
// environment (a .env file in the working or data directory is loaded first).
func Load(opts Options) (Config, error) {
	_ = godotenv.Load()

	dataDir := opts.DataDir
	if env := os.Getenv("STUDYHUB_DATA_DIR"); env != "" && dataDir == "" {
		dataDir = env
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".studyhub")
	}
	_ = godotenv.Load(filepath.Join(dataDir, ".env"))

	fc := fileConfig{}
	path := opts.FilePath
	if path == "" {
		path = filepath.Join(dataDir, fileName)
	}
	if err := readFile(path, &fc, opts.FilePath != ""); err != nil {
		return Config{}, err
	}
	overrideFromEnv(&fc)

	cfg := Config{
		DataDir:       dataDir,
		DBPath:        filepath.Join(dataDir, "studyhub.db"),
		LogPath:       filepath.Join(dataDir, "logs", "studyhub.log"),
		JournalDir:    filepath.Join(dataDir, "journal"),
		DictionaryURL: firstNonEmpty(fc.DictionaryURL, DefaultDictionaryURL),
		ReminderAt:    firstNonEmpty(fc.ReminderAt, "08:00"),
		Timezone:      fc.Timezone,
		LogLevel:      strings.ToLower(firstNonEmpty(fc.LogLevel, "info")),
	}
	var err error
	if cfg.ExamDate, err = time.Parse(time.RFC3339, firstNonEmpty(fc.ExamDate, DefaultExamDate)); err != nil {
		return Config{}, fmt.Errorf("parse exam date: %w", err)
	}
	if cfg.LookupTimeout, err = parseDuration(fc.LookupTimeout, 8*time.Second); err != nil {
		return Config{}, fmt.Errorf("parse lookup timeout: %w", err)
	}
	if cfg.PomodoroWork, err = parseDuration(fc.Pomodoro.Work, 25*time.Minute); err != nil {
		return Config{}, fmt.Errorf("parse pomodoro work: %w", err)
	}
	if cfg.PomodoroBreak, err = parseDuration(fc.Pomodoro.Break, 5*time.Minute); err != nil {
		return Config{}, fmt.Errorf("parse pomodoro break: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Location is the zone that decides where a calendar day starts.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func readFile(path string, fc *fileConfig, required bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, fc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func overrideFromEnv(fc *fileConfig) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&fc.ExamDate, "STUDYHUB_EXAM_DATE")
	set(&fc.DictionaryURL, "STUDYHUB_DICTIONARY_URL")
	set(&fc.LookupTimeout, "STUDYHUB_LOOKUP_TIMEOUT")
	set(&fc.ReminderAt, "STUDYHUB_REMINDER_AT")
	set(&fc.Timezone, "STUDYHUB_TIMEZONE")
	set(&fc.LogLevel, "STUDYHUB_LOG_LEVEL")
	set(&fc.Pomodoro.Work, "STUDYHUB_POMODORO_WORK")
	set(&fc.Pomodoro.Break, "STUDYHUB_POMODORO_BREAK")
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
