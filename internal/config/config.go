package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	SessionTTL    int    `mapstructure:"SESSION_TTL_MINUTES"`
	ImagesDir     string `mapstructure:"IMAGES_DIR"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":5050")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "photoshare")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("SESSION_TTL_MINUTES", 0)
	viper.SetDefault("IMAGES_DIR", "./images")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
