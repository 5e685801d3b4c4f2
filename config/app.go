package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET,required"`

	RegistryURL    string `env:"REGISTRY_URL,required"`
	RegistryAPIKey string `env:"REGISTRY_API_KEY"`
	PayoutURL      string `env:"PAYOUT_URL,required"`
	PayoutAPIKey   string `env:"PAYOUT_API_KEY"`

	// Marketplace identity and fee policy at initialization.
	OperatorAccount string `env:"OPERATOR_ACCOUNT,required"`
	AdminAccount    string `env:"ADMIN_ACCOUNT,required"`
	FeeReceiver     string `env:"FEE_RECEIVER,required"`
	FeeBps          int64  `env:"FEE_BPS" default:"250"`

	Env string `env:"APP_ENV" default:"dev"`
}
