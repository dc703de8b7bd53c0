package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SpotifyID     string
	SpotifySecret string

	FirestoreProject string `default:"afropulse-dev"`

	SocialBuzzURL string `split_words:"true"`
	WebBuzzURL    string `split_words:"true"`
	PressSites    string `split_words:"true"`
	ChartsURL     string `split_words:"true"`

	MaxResults     int           `split_words:"true" default:"20"`
	AdapterTimeout time.Duration `split_words:"true" default:"20s"`
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("afropulse", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
