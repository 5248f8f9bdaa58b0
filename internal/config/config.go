package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type PreviewSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type FirestoreConfig struct {
	ProjectID  string `json:"project_id"`
	Collection string `json:"collection,omitempty"`
}

type LogConfig struct {
	Level      string `json:"level,omitempty"`
	File       string `json:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty"`
}

type SessionConfig struct {
	Max         int `json:"max,omitempty"`
	IdleMinutes int `json:"idle_minutes,omitempty"`
}

type AppConfig struct {
	Name          string            `json:"name"`
	Listen        string            `json:"listen,omitempty"`
	Locale        string            `json:"locale,omitempty"`
	Store         string            `json:"store,omitempty"`
	StoreDir      string            `json:"store_dir,omitempty"`
	Firestore     FirestoreConfig   `json:"firestore,omitempty"`
	Preview       PreviewSize       `json:"preview"`
	PreviewDir    string            `json:"preview_dir,omitempty"`
	Sessions      SessionConfig     `json:"sessions,omitempty"`
	FontFamilies  []string          `json:"font_families,omitempty"`
	Colors        map[string]string `json:"colors,omitempty"`
	Resources     string            `json:"resources,omitempty"`
	LocationsFile string            `json:"locations_file,omitempty"`
	Log           LogConfig         `json:"log,omitempty"`
}

type ConfigManager struct {
	configDir string
	configs   map[string]*AppConfig
}

func NewConfigManager(configDir string) *ConfigManager {
	return &ConfigManager{
		configDir: configDir,
		configs:   make(map[string]*AppConfig),
	}
}

func (cm *ConfigManager) LoadConfig(configName string) (*AppConfig, error) {
	if config, exists := cm.configs[configName]; exists {
		return config, nil
	}

	configFile := filepath.Join(cm.configDir, configName+".json")

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configFile)
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.resolvePaths(cm.configDir)

	cm.configs[configName] = &config
	return &config, nil
}

func (cm *ConfigManager) ListConfigs() ([]string, error) {
	files, err := os.ReadDir(cm.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []string
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			configs = append(configs, strings.TrimSuffix(file.Name(), ".json"))
		}
	}
	sort.Strings(configs)

	return configs, nil
}

// Relative paths inside a config file are relative to the config directory.
func (config *AppConfig) resolvePaths(dir string) {
	for _, p := range []*string{&config.StoreDir, &config.Resources, &config.LocationsFile, &config.PreviewDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Default is used when no config file is selected.
func Default() *AppConfig {
	return &AppConfig{Name: "default"}
}

// GetSessionTTL is how long an edited session may stay idle; zero keeps the
// server default.
func (config *AppConfig) GetSessionTTL() time.Duration {
	return time.Duration(config.Sessions.IdleMinutes) * time.Minute
}

func (config *AppConfig) GetListen() string {
	if config.Listen != "" {
		return config.Listen
	}
	return ":8206"
}

func (config *AppConfig) GetLocale() string {
	if config.Locale != "" {
		return config.Locale
	}
	if lang := os.Getenv("LANG"); lang != "" {
		return lang
	}
	return "en"
}

func (config *AppConfig) GetStore() string {
	if config.Store != "" {
		return strings.ToLower(config.Store)
	}
	return "file"
}

func (config *AppConfig) GetStoreDir() string {
	if config.StoreDir != "" {
		return config.StoreDir
	}
	return "./shared_prefs"
}

func (config *AppConfig) GetFirestoreCollection() string {
	if config.Firestore.Collection != "" {
		return config.Firestore.Collection
	}
	return "widget_settings"
}

func (config *AppConfig) GetPreviewWidth() int {
	if config.Preview.Width > 0 {
		return config.Preview.Width
	}
	return 640
}

func (config *AppConfig) GetPreviewHeight() int {
	if config.Preview.Height > 0 {
		return config.Preview.Height
	}
	return 320
}

func (config *AppConfig) GetColor(key, fallback string) string {
	if config.Colors != nil {
		if color, exists := config.Colors[key]; exists {
			return color
		}
	}
	return fallback
}
