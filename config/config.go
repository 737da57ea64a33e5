package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/missionMeteora/mandrill"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

func New(loc string) (*Config, error) {
	var c Config

	f, err := os.Open(loc)
	if err != nil {
		log.Println("Config error", err)
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&c); err != nil {
		log.Println("Config error", err)
		return nil, err
	}

	c.applyEnv()

	if c.Bucket.User == "" || c.Bucket.Bounty == "" {
		return nil, ErrInvalidConfig
	}

	return &c, nil
}

type Config struct {
	Host string `json:"host"`
	Port string `json:"port"`

	// Sandbox disables outgoing email and relaxes auth cookies for tests.
	Sandbox bool `json:"sandbox"`

	DBPath string `json:"dbPath"`
	DBName string `json:"dbName"`

	ServerURL string `json:"serverUrl"`
	APIPath   string `json:"apiPath"`

	ImagesDir    string `json:"imagesDir"`
	ImageUrlPath string `json:"imageUrlPath"`

	Mandrill struct {
		APIKey     string `json:"apiKey"`
		SubAccount string `json:"subAccount"`
		FromEmail  string `json:"fromEmail"`
		FromName   string `json:"fromName"`
	} `json:"mandrill"`

	Bucket struct {
		Index       string   `json:"index"`
		User        string   `json:"user"`
		Login       string   `json:"login"`
		Token       string   `json:"token"`
		Ownership   string   `json:"ownership"`
		Bounty      string   `json:"bounty"`
		Application string   `json:"application"`
		Submission  string   `json:"submission"`
		Payment     string   `json:"payment"`
		All         []string `json:"all"`
	} `json:"bucket"`
}

// applyEnv lets deploy-time settings override the checked-in config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("AGORA_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("AGORA_PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("AGORA_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("AGORA_SANDBOX"); v != "" {
		c.Sandbox = v == "1" || v == "true"
	}
	if v := os.Getenv("MANDRILL_API_KEY"); v != "" {
		c.Mandrill.APIKey = v
	}
}

// AllBuckets returns every bucket the store needs, the index bucket included.
func (c *Config) AllBuckets() []string {
	if len(c.Bucket.All) > 0 {
		return c.Bucket.All
	}
	return []string{
		c.Bucket.Index, c.Bucket.User, c.Bucket.Login, c.Bucket.Token,
		c.Bucket.Ownership, c.Bucket.Bounty, c.Bucket.Application,
		c.Bucket.Submission, c.Bucket.Payment,
	}
}

func (c *Config) MailClient() *mandrill.Client {
	return mandrill.New(c.Mandrill.APIKey, c.Mandrill.SubAccount, c.Mandrill.FromEmail, c.Mandrill.FromName)
}
