package config

import (
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Port the site listens on, with or without a leading colon.
	Port string `env:"WEBSITE_PORT" envDefault:"4002"`

	// SchedulerURL is the fixed embed URL of the external scheduling
	// widget, query string included. The page passes nothing else to it.
	SchedulerURL string `env:"SCHEDULER_URL" envDefault:"https://cal.com/northlight-studio/session?embed=true&hide_event_type_details=1&theme=light"`

	// FormAction is the fixed POST target of the request-a-quote form.
	// The form backend matches submissions by the form-name field.
	FormAction string `env:"BOOKING_FORM_ACTION" envDefault:"/"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using defaults")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	return cfg
}
