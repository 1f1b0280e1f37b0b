package slack

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the credentials for the Slack collaborators.
type Config struct {
	Token string
}

// LoadConfig resolves the user token from the environment or an optional
// .spond config file. SLACK_USER_TOKEN wins over the file; a missing or empty
// token is ErrNoToken so callers can fail before any network call.
func LoadConfig() (*Config, error) {
	viper.SetConfigName(".spond") // .yaml is implicit
	viper.SetEnvPrefix("SLACK")
	viper.AutomaticEnv()
	_ = viper.BindEnv("user_token") // SLACK_USER_TOKEN

	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	token := strings.TrimSpace(viper.GetString("user_token"))
	if token == "" {
		return nil, ErrNoToken
	}
	return &Config{Token: token}, nil
}
