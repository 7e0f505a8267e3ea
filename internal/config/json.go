package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// accept either strings like "30s" or integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		HashKey          string   `json:"hash_key"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Documents struct {
			MongoURI      string `json:"mongo_uri"`
			MongoDatabase string `json:"mongo_database"`
		} `json:"documents,omitempty"`

		Drafts struct {
			DSN string `json:"dsn"`
		} `json:"drafts,omitempty"`
	} `json:"storage,omitempty"`

	Assets struct {
		S3 struct {
			Endpoint   string   `json:"endpoint"`
			Region     string   `json:"region"`
			Bucket     string   `json:"bucket"`
			AccessKey  string   `json:"access_key"`
			SecretKey  string   `json:"secret_key"`
			PresignTTL Duration `json:"presign_ttl"`
		} `json:"s3,omitempty"`
	} `json:"assets,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		PublicBaseURL   string   `json:"public_base_url"`
		PreviewCacheTTL Duration `json:"preview_cache_ttl"`
		AuthRateLimit   float64  `json:"auth_rate_limit"`
		AuthRateBurst   int      `json:"auth_rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Editor struct {
		AutosaveDelay Duration `json:"autosave_delay"`
		LogPath       string   `json:"log_path"`
	} `json:"editor,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Assets.S3
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			HashKey:          jsonCfg.App.HashKey,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Documents: Documents{
				MongoURI:      jsonCfg.Storage.Documents.MongoURI,
				MongoDatabase: jsonCfg.Storage.Documents.MongoDatabase,
			},
			Drafts: Drafts{DSN: jsonCfg.Storage.Drafts.DSN},
		},
		Assets: Assets{S3: S3{
			Endpoint:   s3.Endpoint,
			Region:     s3.Region,
			Bucket:     s3.Bucket,
			AccessKey:  s3.AccessKey,
			SecretKey:  s3.SecretKey,
			PresignTTL: time.Duration(s3.PresignTTL),
		}},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			PublicBaseURL:   jsonCfg.Server.PublicBaseURL,
			PreviewCacheTTL: time.Duration(jsonCfg.Server.PreviewCacheTTL),
			AuthRateLimit:   jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:   jsonCfg.Server.AuthRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Editor: Editor{
			AutosaveDelay: time.Duration(jsonCfg.Editor.AutosaveDelay),
			LogPath:       jsonCfg.Editor.LogPath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
