package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type MailConfig struct {
	Host     string
	Port     int
	Sender   string // authenticated sender address
	Password string // relay app password
}

var (
	mailConfig *MailConfig
	mailOnce   sync.Once
)

// LoadMailConfig reads the relay credentials once at startup. A missing
// sender or password is fatal: the notification dispatcher cannot run
// without them.
func LoadMailConfig() *MailConfig {
	mailOnce.Do(func() {
		sender := os.Getenv("EMAIL_SENDER")
		password := os.Getenv("EMAIL_PASSWORD")
		if sender == "" || password == "" {
			log.Fatal("EMAIL_SENDER and EMAIL_PASSWORD must be set")
		}

		host := os.Getenv("SMTP_HOST")
		if host == "" {
			host = "smtp.gmail.com"
		}
		port := 587
		if p := os.Getenv("SMTP_PORT"); p != "" {
			parsed, err := strconv.Atoi(p)
			if err != nil {
				log.Fatalf("invalid SMTP_PORT %q: %v", p, err)
			}
			port = parsed
		}

		mailConfig = &MailConfig{
			Host:     host,
			Port:     port,
			Sender:   sender,
			Password: password,
		}
	})
	return mailConfig
}
