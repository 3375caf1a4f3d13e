package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/flagx"
	"github.com/dmitrijs2005/saludconecta/internal/timex"
)

// JsonConfig is the file representation of Config. Pointer fields tell a
// missing key apart from a zero value.
type JsonConfig struct {
	DatabasePath          *string         `json:"database_path"`
	LogFile               *string         `json:"log_file"`
	LogLevel              *string         `json:"log_level"`
	MockLatency           *timex.Duration `json:"mock_latency"`
	SplashDelay           *timex.Duration `json:"splash_delay"`
	DemoNotificationDelay *timex.Duration `json:"demo_notification_delay"`
	ToastTTL              *timex.Duration `json:"toast_ttl"`
	ReminderInterval      *timex.Duration `json:"reminder_interval"`
	ReminderWindow        *timex.Duration `json:"reminder_window"`
	ReminderTimeout       *timex.Duration `json:"reminder_timeout"`
	NotificationsEnabled  *bool           `json:"notifications_enabled"`
	NotificationRate      *float64        `json:"notification_rate"`
	MetricsAddr           *string         `json:"metrics_addr"`
	VideoBaseURL          *string         `json:"video_base_url"`
	VideoTokenSecret      *string         `json:"video_token_secret"`
	VideoTokenTTL         *timex.Duration `json:"video_token_ttl"`
	StorageBackend        *string         `json:"storage_backend"`
	S3Bucket              *string         `json:"s3_bucket"`
	S3Region              *string         `json:"s3_region"`
	S3BaseEndpoint        *string         `json:"s3_base_endpoint"`
	S3AccessKey           *string         `json:"s3_access_key"`
	S3SecretKey           *string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with the file named by -c/-config in args.
// It panics on read or decode errors, like parseFlags.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	setDuration(&cfg.MockLatency, jc.MockLatency)
	setDuration(&cfg.SplashDelay, jc.SplashDelay)
	setDuration(&cfg.DemoNotificationDelay, jc.DemoNotificationDelay)
	setDuration(&cfg.ToastTTL, jc.ToastTTL)
	setDuration(&cfg.ReminderInterval, jc.ReminderInterval)
	setDuration(&cfg.ReminderWindow, jc.ReminderWindow)
	setDuration(&cfg.ReminderTimeout, jc.ReminderTimeout)
	if jc.NotificationsEnabled != nil {
		cfg.NotificationsEnabled = *jc.NotificationsEnabled
	}
	if jc.NotificationRate != nil {
		cfg.NotificationRate = *jc.NotificationRate
	}
	setString(&cfg.MetricsAddr, jc.MetricsAddr)
	setString(&cfg.VideoBaseURL, jc.VideoBaseURL)
	setString(&cfg.VideoTokenSecret, jc.VideoTokenSecret)
	setDuration(&cfg.VideoTokenTTL, jc.VideoTokenTTL)
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
