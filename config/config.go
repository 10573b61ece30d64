package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type CatalogConfig struct {
	// Datadir overrides the embedded dataset with products.json and
	// categories.json from disk. Empty means use the bundled catalog.
	Datadir string `yaml:"datadir" json:"datadir"`
	// Watch reloads the dataset on file change (development only).
	Watch    bool   `yaml:"watch" json:"watch"`
	Currency string `yaml:"currency" json:"currency"`
	// ImageTimeoutSec bounds upstream image fetches.
	ImageTimeoutSec int `yaml:"image_timeout_sec" json:"image_timeout_sec"`
	// PrewarmWorkers bounds the image prewarm pool; 0 disables prewarm.
	PrewarmWorkers int `yaml:"prewarm_workers" json:"prewarm_workers"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"` // production or development
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`
	Logger  LogConfig     `yaml:"logger" json:"logger"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "storefront",
			Location: "UTC",
			Workdir:  "/var/storefront",
			Debug:    false,
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 1899,
		},
		Catalog: CatalogConfig{
			Datadir:         "",
			Watch:           false,
			Currency:        "USD",
			ImageTimeoutSec: 5,
			PrewarmWorkers:  8,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/storefront/storefront.log",
		},
	}
}

// LoadConfig reads the yaml file at path (if it exists) over the defaults and
// then applies STOREFRONT_* environment overrides.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envBindings maps environment variables onto config sections. Values are
// decoded weakly, so STOREFRONT_WEB_PORT=8080 works without type fuss.
var envBindings = map[string][2]string{
	"STOREFRONT_SYSTEM_WORKDIR":  {"system", "workdir"},
	"STOREFRONT_SYSTEM_DEBUG":    {"system", "debug"},
	"STOREFRONT_WEB_HOST":        {"web", "host"},
	"STOREFRONT_WEB_PORT":        {"web", "port"},
	"STOREFRONT_CATALOG_DATADIR": {"catalog", "datadir"},
	"STOREFRONT_CATALOG_WATCH":   {"catalog", "watch"},
	"STOREFRONT_CURRENCY":        {"catalog", "currency"},
	"STOREFRONT_LOGGER_MODE":     {"logger", "mode"},
}

func applyEnvOverrides(cfg *AppConfig) error {
	overrides := map[string]map[string]interface{}{}
	for env, target := range envBindings {
		v, ok := os.LookupEnv(env)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		section, key := target[0], target[1]
		if overrides[section] == nil {
			overrides[section] = map[string]interface{}{}
		}
		overrides[section][key] = v
	}
	if len(overrides) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(overrides)
}

// InitDirs creates the working directories the service writes into.
func (c *AppConfig) InitDirs() error {
	for _, dir := range []string{
		c.System.Workdir,
		filepath.Join(c.System.Workdir, "metrics"),
		filepath.Join(c.System.Workdir, "images"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// ListenAddr is the host:port the web server binds.
func (c *AppConfig) ListenAddr() string {
	return c.Web.Host + ":" + cast.ToString(c.Web.Port)
}
