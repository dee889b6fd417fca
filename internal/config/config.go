package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	// 二维码里编码的对外地址
	PublicURL string `mapstructure:"public_url"`

	// 游戏参数
	MinPlayers   int `mapstructure:"min_players"`
	RoomTTLMin   int `mapstructure:"room_ttl_min"`
	CodeLength   int `mapstructure:"code_length"`
	SecretLength int `mapstructure:"secret_length"`
}

var cfg *AppConfig

func GetConfig() *AppConfig {
	if cfg == nil {
		cfg = InitConfig()
	}

	return cfg
}

func InitConfig() *AppConfig {
	v := viper.New()

	v.SetConfigName("app_config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// 环境变量覆盖，如 WEREWOLF_PORT=9000
	v.SetEnvPrefix("werewolf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("public_url", "http://localhost:8080")
	v.SetDefault("min_players", 4)
	v.SetDefault("room_ttl_min", 120)
	v.SetDefault("code_length", 4)
	v.SetDefault("secret_length", 8)

	if err := v.ReadInConfig(); err != nil {
		panic(fmt.Errorf("加载配置失败: %w", err))
	}

	var config AppConfig

	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("解析配置失败: %w", err))
	}

	return &config
}
