package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"artmarket.db"`

	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Storage  Storage  `envPrefix:"STORAGE_"`
	Auth     Auth     `envPrefix:"AUTH_"`
}

type Razorpay struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID      string `env:"KEY_ID"`
	KeySecret  string `env:"KEY_SECRET"`
	Currency   string `env:"CURRENCY" envDefault:"INR"`
}

type Storage struct {
	// CloudinaryURL selects the Cloudinary backend when set; otherwise
	// uploads go to LocalPath and are served from BASE_URL/uploads.
	CloudinaryURL string `env:"CLOUDINARY_URL"`
	LocalPath     string `env:"LOCAL_PATH" envDefault:"uploads"`
}

type Auth struct {
	JWTSecret      string `env:"JWT_SECRET"`
	TokenExpiryMin int    `env:"TOKEN_EXPIRY_MIN" envDefault:"1440"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
