package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-admin/pkg/kafka"
	"github.com/Astemirdum/library-admin/pkg/logger"
	"github.com/Astemirdum/library-admin/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE"`
}

type SMTP struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASSWORD" json:"-"`
	From     string `envconfig:"SMTP_FROM" default:"library@university.local"`
}

type LLM struct {
	APIKey        string        `envconfig:"GEMINI_API_KEY" json:"-"`
	BaseURL       string        `envconfig:"LLM_BASE_URL"`
	Model         string        `envconfig:"LLM_MODEL" default:"gemini-2.0-flash"`
	Timeout       time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	MaxIterations int           `envconfig:"LLM_MAX_TOOL_ITERATIONS" default:"3"`
	// messages shorter than this skip tools and history
	SimpleMessageLen   int           `envconfig:"LLM_SIMPLE_MESSAGE_LEN" default:"20"`
	SimpleMaxOutput    int32         `envconfig:"LLM_SIMPLE_MAX_OUTPUT" default:"150"`
	SessionMaxMessages int           `envconfig:"CHAT_SESSION_MAX_MESSAGES" default:"20"`
	SessionTTL         time.Duration `envconfig:"CHAT_SESSION_TTL" default:"24h"`
	StreamDebounce     time.Duration `envconfig:"CHAT_STREAM_DEBOUNCE" default:"150ms"`
	StreamKeepAlive    time.Duration `envconfig:"CHAT_STREAM_KEEPALIVE" default:"15s"`
}

type Catalog struct {
	// absolute prefix prepended to stored image paths
	UploadDomain string `envconfig:"UPLOAD_DOMAIN" default:"http://localhost:8080/uploads"`
	// blob | path
	CoverMode string `envconfig:"BOOK_COVER_MODE" default:"path"`
	// genre | genre_or_department
	Classification string `envconfig:"BOOK_CLASSIFICATION" default:"genre_or_department"`
}

type Receipt struct {
	// local | gcs
	Store     string `envconfig:"RECEIPT_STORE" default:"local"`
	Dir       string `envconfig:"RECEIPT_DIR" default:"uploads/receipts"`
	Bucket    string `envconfig:"RECEIPT_BUCKET"`
	StampPath string `envconfig:"RECEIPT_STAMP_PATH" default:"assets/returned_stamp.png"`
}

type Penalty struct {
	// strict | idempotent
	PayMode string `envconfig:"PENALTY_PAY_MODE" default:"idempotent"`
}

type Scheduler struct {
	Enabled      bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	RunHour      int           `envconfig:"SCHEDULER_RUN_HOUR" default:"9"`
	StartupDelay time.Duration `envconfig:"SCHEDULER_STARTUP_DELAY" default:"10s"`
}

type Config struct {
	Server    HTTPServer  `yaml:"server"`
	Database  postgres.DB `yaml:"db"`
	Kafka     kafka.Config
	SMTP      SMTP
	LLM       LLM
	Catalog   Catalog
	Receipt   Receipt
	Penalty   Penalty
	Scheduler Scheduler
	Log       logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set values envconfig leaves alone.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
