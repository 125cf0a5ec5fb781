package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI             string
	MongoDB              string
	ReviewsCollection    string
	BusinessesCollection string
	RedisAddr            string
	RedisPass            string
	JWTSecret            string
	WebhookSecret        string
	HTTPPort             string

	ModelDir string
	DataDir  string

	// fuente de datos por defecto para el retrain: "mongo" o "csv"
	DataSource string

	DefaultRecs int
	MaxRecs     int

	// hiperparámetros del motor (ver internal/recommender)
	BlendAlpha    float64
	LatentFactors int
	TrainEpochs   int
	TrainSeed     int64

	CacheTTLSeconds int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:              getEnv("MONGO_DB", "khanut"),
		ReviewsCollection:    getEnv("MONGO_REVIEWS_COLLECTION", "reviews"),
		BusinessesCollection: getEnv("MONGO_BUSINESSES_COLLECTION", "businesses"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            getEnv("REDIS_PASSWORD", ""),
		JWTSecret:            getEnv("JWT_SECRET", "super-secret"),
		WebhookSecret:        getEnv("WEBHOOK_SECRET", "default-webhook-secret"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		ModelDir:             getEnv("MODEL_DIR", "models"),
		DataDir:              getEnv("DATA_DIR", "data"),
		DataSource:           getEnv("DATA_SOURCE", "mongo"),
		DefaultRecs:          getEnvInt("DEFAULT_RECOMMENDATIONS", 5),
		MaxRecs:              getEnvInt("MAX_RECOMMENDATIONS", 20),
		BlendAlpha:           getEnvFloat("BLEND_ALPHA", 0.6),
		LatentFactors:        getEnvInt("LATENT_FACTORS", 20),
		TrainEpochs:          getEnvInt("TRAIN_EPOCHS", 50),
		TrainSeed:            int64(getEnvInt("TRAIN_SEED", 42)),
		CacheTTLSeconds:      getEnvInt("CACHE_TTL_SECONDS", 3600),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q no es numérico, usando %d\n", key, v, def)
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] %s=%q no es numérico, usando %g\n", key, v, def)
		return def
	}
	return f
}
