package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the SaludConecta terminal client.
//
// Durations are time.Duration values; NotificationRate is events per second.
type Config struct {
	// Local files.
	DatabasePath string
	LogFile      string
	LogLevel     string

	// Mock collaborators.
	MockLatency time.Duration

	// Screen timing.
	SplashDelay           time.Duration
	DemoNotificationDelay time.Duration
	ToastTTL              time.Duration

	// Appointment reminders.
	ReminderInterval time.Duration
	ReminderWindow   time.Duration
	ReminderTimeout  time.Duration

	// Local notifications.
	NotificationsEnabled bool
	NotificationRate     float64

	// Optional Prometheus endpoint, e.g. "127.0.0.1:9100". Empty disables it.
	MetricsAddr string

	// Video collaborator.
	VideoBaseURL     string
	VideoTokenSecret string
	VideoTokenTTL    time.Duration

	// Avatar storage: "memory" or "s3".
	StorageBackend string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "saludconecta.db"
	c.LogFile = "saludconecta.log"
	c.LogLevel = "info"
	c.MockLatency = 1 * time.Second
	c.SplashDelay = 3 * time.Second
	c.DemoNotificationDelay = 3 * time.Second
	c.ToastTTL = 4 * time.Second
	c.ReminderInterval = 1 * time.Minute
	c.ReminderWindow = 24 * time.Hour
	c.ReminderTimeout = 10 * time.Second
	c.NotificationsEnabled = true
	c.NotificationRate = 1
	c.MetricsAddr = ""
	c.VideoBaseURL = "https://saludconecta-video.com/call/"
	c.VideoTokenSecret = "video-secret"
	c.VideoTokenTTL = 1 * time.Hour
	c.StorageBackend = "memory"
	c.S3Bucket = "avatars"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
}

// LoadConfig applies defaults, then the optional JSON file, then flags.
// Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
