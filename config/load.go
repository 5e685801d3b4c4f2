package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"adspot/model"
)

func Load() App {
	_ = godotenv.Load()

	cfg := App{
		Port:        getenv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "local_dev_secret"),

		RegistryURL:    must("REGISTRY_URL"),
		RegistryAPIKey: os.Getenv("REGISTRY_API_KEY"),
		PayoutURL:      must("PAYOUT_URL"),
		PayoutAPIKey:   os.Getenv("PAYOUT_API_KEY"),

		OperatorAccount: must("OPERATOR_ACCOUNT"),
		AdminAccount:    must("ADMIN_ACCOUNT"),
		FeeReceiver:     must("FEE_RECEIVER"),
		FeeBps:          getenvInt("FEE_BPS", 250),

		Env: getenv("APP_ENV", "dev"),
	}

	if cfg.FeeBps < 0 || cfg.FeeBps > model.MaxFeeBps {
		slog.Error("FEE_BPS out of range", "bps", cfg.FeeBps, "max", model.MaxFeeBps)
		panic("invalid FEE_BPS")
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Error("bad int env", "key", k, "value", v)
		panic("invalid " + k)
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
