package config

import "github.com/spf13/viper"

// Config holds the process configuration, read from configs/config.yaml with
// environment variable overrides.
type Config struct {
	ServerAddress    string `mapstructure:"server_address"`
	DBSource         string `mapstructure:"db_source"`
	ModelName        string `mapstructure:"model_name"`
	WikipediaBaseURL string `mapstructure:"wikipedia_base_url"`
}

// LoadConfig reads configuration from the given directory
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return config, err
	}

	err := v.Unmarshal(&config)
	return config, err
}
