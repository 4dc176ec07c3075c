package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	DB         DBConfig
	JWT        JWTConfig
	HTTP       HTTPConfig
	Cookie     CookieConfig
	Cloudinary CloudinaryConfig
	Queue      QueueConfig
	Push       PushConfig
	Telegram   TelegramConfig
	Sheets     SheetsConfig
	Invite     InviteConfig
	Upload     UploadConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	FrontendDir    string   // build estático del dashboard (vacío = no se sirve)
	AllowedOrigins []string // orígenes CORS permitidos, separados por coma en ALLOWED_ORIGINS
	Timezone       string   // zona IANA para agrupar la analítica por día y hora
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL   string
	Host          string
	Port          int
	User          string
	Password      string
	DBName        string
	SSLMode       string
	RunMigrations bool // aplica las migraciones embebidas al arrancar
	MaxConns      int
	MinConns      int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. Secret es el JWT secret del proyecto Supabase.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CookieConfig configuración de las cookies de sesión y de sucursal.
type CookieConfig struct {
	Secure    bool
	BranchKey string // clave base64 de 32 bytes para cifrar app_branch
}

// CloudinaryConfig credenciales del CDN de imágenes.
// Si URL está definido (CLOUDINARY_URL) tiene prioridad sobre los campos sueltos.
type CloudinaryConfig struct {
	URL        string
	CloudName  string
	APIKey     string
	APISecret  string
	BaseFolder string
}

// Enabled indica si hay credenciales suficientes para subir imágenes.
func (c CloudinaryConfig) Enabled() bool {
	return c.URL != "" || (c.CloudName != "" && c.APIKey != "" && c.APISecret != "")
}

// QueueConfig conexión a RabbitMQ. Vacío = notificaciones en proceso.
type QueueConfig struct {
	RabbitMQURL   string
	PrefetchCount int
}

// PushConfig claves VAPID para Web Push.
type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string // mailto: o URL de contacto
}

// Enabled indica si las claves VAPID están configuradas.
func (c PushConfig) Enabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// TelegramConfig bot para avisos al personal.
type TelegramConfig struct {
	BotToken string
}

// SheetsConfig credenciales de Google para importar cartas desde hojas de cálculo.
type SheetsConfig struct {
	CredentialsPath string
}

// InviteConfig vigencia de los tokens de invitación.
type InviteConfig struct {
	TTLHours int
}

// UploadConfig límites de subida.
type UploadConfig struct {
	MaxImageMB int
}

// MaxImageBytes devuelve el límite en bytes.
func (c UploadConfig) MaxImageBytes() int64 {
	return int64(c.MaxImageMB) * 1024 * 1024
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Orden: .env y .env.local (godotenv, sin pisar el entorno), luego config.{env,yaml} vía Viper.
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, CLOUDINARY_URL, etc.
func Load() (*Config, error) {
	// godotenv.Load no sobreescribe variables ya presentes; ignoramos error si no existen los archivos
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "restaurante-admin"),
			FrontendDir:    getString(v, "FRONTEND_DIR", ""),
			AllowedOrigins: splitList(getString(v, "ALLOWED_ORIGINS", "http://localhost:3000")),
			Timezone:       getString(v, "APP_TIMEZONE", "America/Bogota"),
		},
		DB: DBConfig{
			DatabaseURL:   getString(v, "DATABASE_URL", ""),
			Host:          getString(v, "DB_HOST", "localhost"),
			Port:          getInt(v, "DB_PORT", 5432),
			User:          getString(v, "DB_USER", "postgres"),
			Password:      getString(v, "DB_PASSWORD", ""),
			DBName:        getString(v, "DB_NAME", "postgres"),
			SSLMode:       getString(v, "DB_SSLMODE", "disable"),
			RunMigrations: getBool(v, "DB_RUN_MIGRATIONS", false),
			MaxConns:      getInt(v, "DB_MAX_CONNS", 10),
			MinConns:      getInt(v, "DB_MIN_CONNS", 2),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24*7),
			Issuer:     getString(v, "JWT_ISSUER", "restaurante-admin"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Cookie: CookieConfig{
			Secure:    getBool(v, "COOKIE_SECURE", false),
			BranchKey: getString(v, "BRANCH_COOKIE_KEY", ""),
		},
		Cloudinary: CloudinaryConfig{
			URL:        getString(v, "CLOUDINARY_URL", ""),
			CloudName:  getString(v, "CLOUDINARY_CLOUD_NAME", ""),
			APIKey:     getString(v, "CLOUDINARY_API_KEY", ""),
			APISecret:  getString(v, "CLOUDINARY_API_SECRET", ""),
			BaseFolder: getString(v, "CLOUDINARY_FOLDER", "restaurante"),
		},
		Queue: QueueConfig{
			RabbitMQURL:   getString(v, "RABBITMQ_URL", ""),
			PrefetchCount: getInt(v, "RABBITMQ_PREFETCH_COUNT", 10),
		},
		Push: PushConfig{
			VAPIDPublicKey:  getString(v, "VAPID_PUBLIC_KEY", ""),
			VAPIDPrivateKey: getString(v, "VAPID_PRIVATE_KEY", ""),
			Subscriber:      getString(v, "VAPID_SUBSCRIBER", "mailto:admin@example.com"),
		},
		Telegram: TelegramConfig{
			BotToken: getString(v, "TELEGRAM_BOT_TOKEN", ""),
		},
		Sheets: SheetsConfig{
			CredentialsPath: getString(v, "GOOGLE_CREDENTIALS_PATH", ""),
		},
		Invite: InviteConfig{
			TTLHours: getInt(v, "INVITE_TTL_HOURS", 24),
		},
		Upload: UploadConfig{
			MaxImageMB: getInt(v, "UPLOAD_MAX_IMAGE_MB", 9),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
