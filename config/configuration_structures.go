package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr         string `yaml:"addr"`
	Password     string `yaml:"password"`
	DB           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool_size"`
	CallTimeout  string `yaml:"call_timeout"`  // таймаут одного обращения к Redis
	PingTimeout  string `yaml:"ping_timeout"`  // таймаут первичного ping при старте
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

type JWTConfig struct {
	SecretKey           string `yaml:"secret_key"`
	AccessTokenTTL      string `yaml:"access_token_ttl"`       // например "30m"
	RefreshTokenTTLDays int    `yaml:"refresh_token_ttl_days"` // например 7
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`       // лимит запросов в окне
	WindowSeconds int `yaml:"window_seconds"` // длина окна в секундах
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type PresignConfig struct {
	URLTTL string `yaml:"url_ttl"` // срок действия presigned URL, например "15m"
}
