package h

import (
	"github.com/spf13/viper"
)

func init() {
	viper.AutomaticEnv()
}

func GetEnv(keys ...string) string {
	for _, key := range keys {
		if value := viper.GetString(key); value != "" {
			return value
		}
	}
	return ""
}

func GetEnvInt(key string, fallback int) int {
	if value := viper.GetInt(key); value > 0 {
		return value
	}
	return fallback
}
