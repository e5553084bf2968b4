package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string `yaml:"env" env:"CHATGURU_ENV" env-default:"local"`
	ChatGuru struct {
		ApiToken  string `yaml:"api_token" env:"CHATGURU_API_TOKEN" env-default:""`
		Endpoint  string `yaml:"endpoint" env:"CHATGURU_API_ENDPOINT" env-default:"https://api.chatguru.app/api/v1"`
		AccountId string `yaml:"account_id" env:"CHATGURU_ACCOUNT_ID" env-default:""`
		PhoneId   string `yaml:"phone_id" env:"CHATGURU_PHONE_ID" env-default:""`
	} `yaml:"chatguru"`
	Telegram struct {
		ApiKey  string `yaml:"api_key" env:"CHATGURU_TG_API_KEY" env-default:""`
		AdminId int64  `yaml:"admin_id" env:"CHATGURU_TG_ADMIN_ID" env-default:"0"`
		BotName string `yaml:"bot_name" env-default:"ChatGuruAlertBot"`
		Enabled bool   `yaml:"enabled" env:"CHATGURU_TG_ENABLED" env-default:"false"`
	} `yaml:"telegram"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env:"CHATGURU_BIND_IP" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env:"CHATGURU_PORT" env-default:"9100"`
		ApiKey string `yaml:"key" env:"CHATGURU_API_KEY" env-default:""`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

// MustLoad reads the config file at path, letting CHATGURU_* environment
// variables override it. With no usable file the environment alone is
// enough to run.
func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if path == "" || !fileExists(path) {
			if err = cleanenv.ReadEnv(instance); err != nil {
				instance = nil
				log.Fatal(err)
			}
			return
		}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
