package cmd

// Counter store backends selectable via COUNTER_STORE.
const (
	CounterStorePostgres = "postgres"
	CounterStoreRedis    = "redis"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	CounterStore  string
	RedisAddr     string
	RedisPassword string
}
