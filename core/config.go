package core

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	Env     string // DEV (local; default), TEST, QA, PROD
	Debug   bool
	Build   string

	SecretKey    []byte
	SessionTTL   time.Duration
	RollbarToken string

	// RequestFetchDelay simulates backend latency on the in-memory
	// request store. Zero outside DEV.
	RequestFetchDelay time.Duration

	Server struct {
		Host            string
		Port            int
		ShutdownTimeout time.Duration
	}

	Firebase struct {
		ProjectID       string
		CredentialsFile string
		WebAPIKey       string
	}

	Push struct {
		// DeviceToken is a statically configured token used by the
		// local token source; real device tokens are registered by
		// the mobile client.
		DeviceToken string
	}
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "WandWrite")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "x2l)d$v8^#q0n&ujmr!ze7@wk5+ahc4(y9gbp6ftso31i_")
	conf.SetDefault("sessionTTL", 7*24*time.Hour)
	conf.SetDefault("requestFetchDelay", time.Second)
	conf.SetDefault("serverHost", "0.0.0.0")
	conf.SetDefault("serverPort", 8000)
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("firebaseProjectID", "")
	conf.SetDefault("firebaseCredentialsFile", "")
	conf.SetDefault("firebaseWebAPIKey", "")
	conf.SetDefault("pushDeviceToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		AppName:           conf.GetString("appName"),
		Env:               env,
		Debug:             conf.GetBool("debug") && env != "PROD",
		Build:             conf.GetString("build"),
		SecretKey:         []byte(conf.GetString("secretKey")),
		SessionTTL:        conf.GetDuration("sessionTTL"),
		RollbarToken:      conf.GetString("rollbarToken"),
		RequestFetchDelay: conf.GetDuration("requestFetchDelay"),
	}
	c.Server.Host = conf.GetString("serverHost")
	c.Server.Port = conf.GetInt("serverPort")
	c.Server.ShutdownTimeout = conf.GetDuration("serverShutdownTimeout")
	c.Firebase.ProjectID = conf.GetString("firebaseProjectID")
	c.Firebase.CredentialsFile = conf.GetString("firebaseCredentialsFile")
	c.Firebase.WebAPIKey = conf.GetString("firebaseWebAPIKey")
	c.Push.DeviceToken = conf.GetString("pushDeviceToken")

	if env != "DEV" && env != "TEST" {
		c.RequestFetchDelay = 0
	}
	return c
}
