package config

import (
	"fmt"
	"net/smtp"
)

type SMTPConfig struct {
	Sender   string
	Password string
	Host     string
	Port     string
}

func (c *SMTPConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *SMTPConfig) Auth() smtp.Auth {
	return smtp.PlainAuth("", c.Sender, c.Password, c.Host)
}

// LoadSMTPConfig returns nil when SMTP_HOST is unset, which turns booking
// emails off.
func LoadSMTPConfig() (*SMTPConfig, error) {
	host := getEnv("SMTP_HOST", "")
	if host == "" {
		return nil, nil
	}

	cfg := &SMTPConfig{
		Sender:   getEnv("EMAIL_SENDER", ""),
		Password: getEnv("EMAIL_SENDER_PASSWORD", ""),
		Host:     host,
		Port:     getEnv("SMTP_PORT", "587"),
	}
	if cfg.Sender == "" {
		return nil, fmt.Errorf("email sender invalid, value : %s", cfg.Sender)
	}
	return cfg, nil
}
