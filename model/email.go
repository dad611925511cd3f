package model

import "time"

type EmailConfig struct {
	Host      string        `yaml:"host" validate:"required"`
	Port      string        `yaml:"port" validate:"required,numeric"`
	Username  string        `yaml:"username" validate:"required"`
	Password  string        `yaml:"password" validate:"required"`
	Secure    bool          `yaml:"secure"`
	Timeout   time.Duration `yaml:"timeout"`
	FromName  string        `yaml:"from_name"`
	Recipient string        `yaml:"recipient" validate:"required,email"`

	// Title and Site are shown in the notification header and footer.
	Title string `yaml:"title"`
	Site  string `yaml:"site"`
}
