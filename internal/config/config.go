package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultMediaBucket      = "park-media"
	DefaultThumbnailsBucket = "park-media-thumbnails"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool

	MediaBucket      string
	ThumbnailsBucket string

	RedisAddr     string
	RedisPassword string

	JWTPublicKey string

	EncoderBin     string
	ProberBin      string
	EncoderTimeout time.Duration
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("MEDIA_BUCKET", DefaultMediaBucket)
	viper.SetDefault("THUMBNAILS_BUCKET", DefaultThumbnailsBucket)
	viper.SetDefault("ENCODER_BIN", "ffmpeg")
	viper.SetDefault("PROBER_BIN", "ffprobe")
	viper.SetDefault("ENCODER_TIMEOUT_SECONDS", 300)

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),

		MediaBucket:      viper.GetString("MEDIA_BUCKET"),
		ThumbnailsBucket: viper.GetString("THUMBNAILS_BUCKET"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		JWTPublicKey: viper.GetString("JWT_PUBLIC_KEY"),

		EncoderBin:     viper.GetString("ENCODER_BIN"),
		ProberBin:      viper.GetString("PROBER_BIN"),
		EncoderTimeout: time.Duration(viper.GetInt("ENCODER_TIMEOUT_SECONDS")) * time.Second,
	}, nil
}
