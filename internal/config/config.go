package config

import (
	"os"
	"strings"
)

// Store backend names accepted in STORE_BACKEND.
const (
	BackendExcel    = "excel"
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
)

type Config struct {
	Port           string
	Environment    string   // ENV: production, development, etc.
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL(s)

	// Storage backend selection
	StoreBackend    string // excel, sheets or postgres
	ExcelPath       string // local spreadsheet file (excel backend)
	SheetID         string // spreadsheet identifier (sheets backend)
	SheetName       string // sheet/tab holding submissions
	CredentialsFile string // Google service account key file
	CredentialsJSON string // inline service account key; takes precedence over the file
	PostgresURI     string

	// Mail relay
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// Notification targets
	ContactEmail string // operator inbox; empty disables the operator notification
	SendAck      bool   // send the thank-you acknowledgment back to the submitter
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:3000"), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		Port:           getEnv("PORT", "5000"),
		Environment:    env,
		AllowedOrigins: allowedOrigins,

		StoreBackend:    strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", BackendExcel))),
		ExcelPath:       getEnv("EXCEL_PATH", "contact_submissions.xlsx"),
		SheetID:         getEnv("SHEET_ID", ""),
		SheetName:       getEnv("SHEET_NAME", "Submissions"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		CredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		PostgresURI:     getEnv("POSTGRES_URI", "postgres://localhost:5432/contact?sslmode=disable"),

		SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: getEnvInt("SMTP_PORT", 465),
		SMTPUser: getEnv("EMAIL_USER", ""),
		SMTPPass: getEnv("EMAIL_PASS", ""),

		ContactEmail: getEnv("CONTACT_EMAIL", "azzaconstruction55@gmail.com"),
		SendAck:      getEnvBool("SEND_ACK", true),
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return defaultValue
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
