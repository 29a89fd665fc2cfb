// internal/coverage/config.go
package coverage

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadMailConfig.
const (
	EnvSMTPAddr = "AUTOSOME_SMTP_ADDR"
	EnvMailFrom = "AUTOSOME_MAIL_FROM"
	EnvMailTo   = "AUTOSOME_MAIL_TO"
)

// MailConfig configures SMTPNotifier.
type MailConfig struct {
	Addr string
	From string
	To   []string
}

// LoadMailConfig merges an optional dotenv file into the environment
// (existing variables win) and reads the AUTOSOME_* settings. A missing
// file is not an error. It reports whether the file was loaded.
func LoadMailConfig(envFile string) (MailConfig, bool, error) {
	loaded := false
	if envFile != "" {
		switch err := godotenv.Load(envFile); {
		case err == nil:
			loaded = true
		case errors.Is(err, fs.ErrNotExist):
		default:
			return MailConfig{}, false, err
		}
	}
	cfg := MailConfig{
		Addr: getenv(EnvSMTPAddr, "localhost:25"),
		From: getenv(EnvMailFrom, "autosome_check@server.com"),
	}
	for _, r := range strings.Split(os.Getenv(EnvMailTo), ",") {
		if r = strings.TrimSpace(r); r != "" {
			cfg.To = append(cfg.To, r)
		}
	}
	return cfg, loaded, nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
