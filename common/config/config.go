package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppName      string        `mapstructure:"appName"`
	LogConf      LogConf       `mapstructure:"log"`
	TableConf    TableConf     `mapstructure:"tables"`
	RuleConf     RuleConf      `mapstructure:"rules"`
	Situation    SituationConf `mapstructure:"situation"`
	CacheConf    CacheConf     `mapstructure:"cache"`
	BatchConf    BatchConf     `mapstructure:"batch"`
	DatabaseConf DatabaseConf  `mapstructure:"database"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// TableConf 拆分表文件路径
type TableConf struct {
	SuitPatterns  string `mapstructure:"suitPatterns"`
	HonorPatterns string `mapstructure:"honorPatterns"`
}

// RuleConf 规则开关
type RuleConf struct {
	AkaDora    bool `mapstructure:"akaDora"`
	OpenTanyao bool `mapstructure:"openTanyao"`
}

// SituationConf 默认场况，牌使用 mpsz 记法
type SituationConf struct {
	RoundWind         string `mapstructure:"roundWind"`
	SeatWind          string `mapstructure:"seatWind"`
	Honba             int    `mapstructure:"honba"`
	RiichiSticks      int    `mapstructure:"riichiSticks"`
	DoraIndicators    string `mapstructure:"doraIndicators"`
	UraDoraIndicators string `mapstructure:"uraDoraIndicators"`
}

type CacheConf struct {
	Enabled    bool  `mapstructure:"enabled"`
	MaxCost    int64 `mapstructure:"maxCost"`
	TTLSeconds int   `mapstructure:"ttlSeconds"`
}

type BatchConf struct {
	Workers int `mapstructure:"workers"`
}

type DatabaseConf struct {
	MongoConf MongoConf `mapstructure:"mongo"`
}

type MongoConf struct {
	Url         string `mapstructure:"url"`
	Db          string `mapstructure:"db"`
	Collection  string `mapstructure:"collection"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	MinPoolSize int    `mapstructure:"minPoolSize"`
	MaxPoolSize int    `mapstructure:"maxPoolSize"`
}

// Enabled 配置了 url 时才持久化
func (m MongoConf) Enabled() bool {
	return m.Url != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("appName", "mahjong-score")
	v.SetDefault("log.level", "info")
	v.SetDefault("tables.suitPatterns", "resource/suits.json")
	v.SetDefault("tables.honorPatterns", "resource/honors.json")
	v.SetDefault("rules.akaDora", true)
	v.SetDefault("rules.openTanyao", true)
	v.SetDefault("situation.roundWind", "1z")
	v.SetDefault("situation.seatWind", "1z")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.maxCost", 1<<16)
	v.SetDefault("cache.ttlSeconds", 600)
	v.SetDefault("batch.workers", 4)
	v.SetDefault("database.mongo.collection", "score_records")
	v.SetDefault("database.mongo.minPoolSize", 1)
	v.SetDefault("database.mongo.maxPoolSize", 10)
}

// Default 不读取文件时的默认配置
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// 默认值总能解析
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load 读取配置文件，环境变量可以覆盖，键中的 . 替换为 _，如 LOG_LEVEL
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", configFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configFile, err)
	}
	if cfg.BatchConf.Workers <= 0 {
		return nil, fmt.Errorf("batch.workers must be positive, got %d", cfg.BatchConf.Workers)
	}
	return &cfg, nil
}
