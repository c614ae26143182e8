package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
	defaultGatewayTimeout     = 8 * time.Second
	defaultDeviceQuotaBytes   = 5 * 1024 * 1024
	defaultMemoriesKey        = "memories.json"
	defaultStorageDir         = "data"
	defaultDevicePath         = "data/device.db"
	defaultServerURL          = "http://localhost:3001"
	defaultPort               = 3001
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Gateway bounds every outbound enrichment or geocoding call
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	// Gemini story expansion and summarization
	Gemini *GeminiConfig `json:"gemini" yaml:"gemini"`

	// ElevenLabs narration
	ElevenLabs *ElevenLabsConfig `json:"elevenLabs" yaml:"elevenLabs"`

	// Geocoder for the add-place flow
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// Storage for the memories document and the device store
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Client settings used by the explore shell
	Client *ClientConfig `json:"client" yaml:"client"`

	// QRCode configuration for place share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GatewayConfig defines timeouts and circuit breaking shared by all gateways
type GatewayConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Consecutive failures before the breaker opens
	BreakerFailures uint32 `json:"breakerFailures" yaml:"breakerFailures"`

	// How long the breaker stays open before probing again
	BreakerCooldown time.Duration `json:"breakerCooldown" yaml:"breakerCooldown"`
}

// GeminiConfig defines the generative text gateway
type GeminiConfig struct {
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	Model    string `json:"model" yaml:"model"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Minimum interval between upstream calls
	MinInterval time.Duration `json:"minInterval" yaml:"minInterval"`
}

// ElevenLabsConfig defines the text-to-speech gateway
type ElevenLabsConfig struct {
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	VoiceID  string `json:"voiceId" yaml:"voiceId"`
	ModelID  string `json:"modelId" yaml:"modelId"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// GeocoderConfig defines the forward geocoding gateway
type GeocoderConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	UserAgent string `json:"userAgent" yaml:"userAgent"`
	Language  string `json:"language" yaml:"language"`

	// Nominatim's usage policy allows one request per second
	MinInterval time.Duration `json:"minInterval" yaml:"minInterval"`
}

// StorageConfig defines where persisted documents live
type StorageConfig struct {
	// Local directory for the memories document (fileblob)
	Dir string `json:"dir" yaml:"dir"`

	// Optional bucket URL (mem://, file:///abs/path, ...) overriding Dir
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Object key of the memories document inside the bucket
	MemoriesKey string `json:"memoriesKey" yaml:"memoriesKey"`

	// SQLite file backing the device store
	DevicePath string `json:"devicePath" yaml:"devicePath"`

	// Largest value the device store accepts, in bytes
	DeviceQuotaBytes int `json:"deviceQuotaBytes" yaml:"deviceQuotaBytes"`
}

// ClientConfig defines how the shell reaches the backing service
type ClientConfig struct {
	ServerURL string `json:"serverUrl" yaml:"serverUrl"`

	// Directory for transient narration audio; empty uses the OS temp dir
	AudioDir string `json:"audioDir" yaml:"audioDir"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and applies environment overrides.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// ELEVENLABS_APIKEY -> elevenLabs.apiKey
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see nil.
func ApplyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}

	if cfg.Gateway == nil {
		cfg.Gateway = &GatewayConfig{}
	}
	if cfg.Gateway.Timeout <= 0 {
		cfg.Gateway.Timeout = defaultGatewayTimeout
	}
	if cfg.Gateway.BreakerFailures == 0 {
		cfg.Gateway.BreakerFailures = 5
	}
	if cfg.Gateway.BreakerCooldown <= 0 {
		cfg.Gateway.BreakerCooldown = 30 * time.Second
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}

	if cfg.ElevenLabs == nil {
		cfg.ElevenLabs = &ElevenLabsConfig{}
	}
	if cfg.ElevenLabs.Endpoint == "" {
		cfg.ElevenLabs.Endpoint = "https://api.elevenlabs.io"
	}
	if cfg.ElevenLabs.VoiceID == "" {
		cfg.ElevenLabs.VoiceID = "21m00Tcm4TlvDq8ikWAM"
	}
	if cfg.ElevenLabs.ModelID == "" {
		cfg.ElevenLabs.ModelID = "eleven_multilingual_v2"
	}

	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{}
	}
	if cfg.Geocoder.Endpoint == "" {
		cfg.Geocoder.Endpoint = "https://nominatim.openstreetmap.org/search"
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = "WhatWasHere/1.0 (local app; respectful use)"
	}
	if cfg.Geocoder.Language == "" {
		cfg.Geocoder.Language = "en"
	}
	if cfg.Geocoder.MinInterval <= 0 {
		cfg.Geocoder.MinInterval = time.Second
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = defaultStorageDir
	}
	if cfg.Storage.MemoriesKey == "" {
		cfg.Storage.MemoriesKey = defaultMemoriesKey
	}
	if cfg.Storage.DevicePath == "" {
		cfg.Storage.DevicePath = defaultDevicePath
	}
	if cfg.Storage.DeviceQuotaBytes <= 0 {
		cfg.Storage.DeviceQuotaBytes = defaultDeviceQuotaBytes
	}

	if cfg.Client == nil {
		cfg.Client = &ClientConfig{}
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = defaultServerURL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = "http://localhost:5173"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
