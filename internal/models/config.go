package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatasetConfig struct {
	Source string `mapstructure:"source"` // csv, parquet, postgres, elasticsearch
	Path   string `mapstructure:"path"`
}

type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// DSN returns URL when set, otherwise a keyword/value connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Index     string   `mapstructure:"index"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type OutputConfig struct {
	Destination  string             `mapstructure:"destination"` // console, json, csv, parquet, kafka
	Path         string             `mapstructure:"path"`
	Folder       string             `mapstructure:"folder"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
}

type KafkaConfig struct {
	BrokerList       string `mapstructure:"broker_list"`
	TopicPrefix      string `mapstructure:"topic_prefix"`
	RetryMax         int    `mapstructure:"retry_max"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`
}

type TripConfig struct {
	DefaultMinRating float64 `mapstructure:"default_min_rating"`
	DefaultDays      int     `mapstructure:"default_days"`
	MaxDays          int     `mapstructure:"max_days"`
	// DaysPerCity seeds the plan command when no --days flag is given.
	DaysPerCity []CityDays `mapstructure:"days_per_city"`
}

// VisualizationConfig holds the business constants of the magnitude
// formulas and the outlier compression pass.
type VisualizationConfig struct {
	RatingMultiplier  float64 `mapstructure:"rating_multiplier"`
	PopularityDivisor float64 `mapstructure:"popularity_divisor"`
	UniformMagnitude  float64 `mapstructure:"uniform_magnitude"`
	OutlierThreshold  float64 `mapstructure:"outlier_threshold"`
	OutlierDivisor    float64 `mapstructure:"outlier_divisor"`
}

type SeedConfig struct {
	Count      int   `mapstructure:"count"`
	RandomSeed int64 `mapstructure:"random_seed"`
}

type Config struct {
	Dataset       DatasetConfig       `mapstructure:"dataset"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Output        OutputConfig        `mapstructure:"output"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Trip          TripConfig          `mapstructure:"trip"`
	// Pricing maps a price tier symbol to its estimated cost per stop.
	Pricing       map[string]float64  `mapstructure:"pricing"`
	Visualization VisualizationConfig `mapstructure:"visualization"`
	Seed          SeedConfig          `mapstructure:"seed"`
}

// DefaultPricing is the tier to cost table used when the config has none.
func DefaultPricing() map[string]float64 {
	return map[string]float64{
		PriceBudget:    20,
		PriceModerate:  40,
		PriceExpensive: 80,
		PriceLuxury:    150,
	}
}

// DefaultVisualization returns the magnitude constants of the 3D map.
func DefaultVisualization() VisualizationConfig {
	return VisualizationConfig{
		RatingMultiplier:  20,
		PopularityDivisor: 5,
		UniformMagnitude:  50,
		OutlierThreshold:  5000,
		OutlierDivisor:    50,
	}
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dataset.source", "csv")
	v.SetDefault("dataset.path", "data/european_restaurants.csv")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "foodroadtrip")
	v.SetDefault("database.dbname", "foodroadtrip")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)

	v.SetDefault("elasticsearch.addresses", []string{"http://localhost:9200"})
	v.SetDefault("elasticsearch.index", "restaurants")

	v.SetDefault("output.destination", "console")
	v.SetDefault("output.path", "output")
	v.SetDefault("output.folder", "")
	v.SetDefault("output.cloud_storage.provider", "")

	v.SetDefault("kafka.broker_list", "localhost:9092")
	v.SetDefault("kafka.topic_prefix", "foodroadtrip.")
	v.SetDefault("kafka.retry_max", 5)

	v.SetDefault("trip.default_min_rating", 4.0)
	v.SetDefault("trip.default_days", 2)
	v.SetDefault("trip.max_days", 30)

	pricing := make(map[string]interface{})
	for tier, cost := range DefaultPricing() {
		pricing[tier] = cost
	}
	v.SetDefault("pricing", pricing)

	vis := DefaultVisualization()
	v.SetDefault("visualization.rating_multiplier", vis.RatingMultiplier)
	v.SetDefault("visualization.popularity_divisor", vis.PopularityDivisor)
	v.SetDefault("visualization.uniform_magnitude", vis.UniformMagnitude)
	v.SetDefault("visualization.outlier_threshold", vis.OutlierThreshold)
	v.SetDefault("visualization.outlier_divisor", vis.OutlierDivisor)

	v.SetDefault("seed.count", 500)
	v.SetDefault("seed.random_seed", 42)
}

// LoadConfig initializes and reads the configuration using the global Viper
// instance, so values bound from command flags take part.
func LoadConfig(cfgFile string) (*Config, error) {
	return LoadConfigFrom(viper.GetViper(), cfgFile)
}

// LoadConfigFrom reads configuration into v and decodes it. A config file
// that cannot be found in the search path is not an error; an explicitly
// named file that is missing or malformed is.
func LoadConfigFrom(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		v.SetConfigName("foodroadtrip")
	}

	v.SetEnvPrefix("FOODROADTRIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			StringToCityDaysHookFunc(),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if len(config.Pricing) == 0 {
		config.Pricing = DefaultPricing()
	}

	return &config, nil
}

// StringToCityDaysHookFunc decodes "Paris=2" strings into CityDays values.
func StringToCityDaysHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(CityDays{}) {
			return data, nil
		}
		return ParseCityDays(data.(string))
	}
}
