package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret     string
	AdminPassword string
	RedisURL      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminPassword = GetEnv("ADMIN_PASSWORD")
	RedisURL = GetEnv("REDIS_URL", "redis://localhost:6379/0")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if AdminPassword == "" {
		log.Println("❌ ADMIN_PASSWORD belum diset!")
	}

	// Kredensial OSS (ALI_OSS_*) sengaja tidak divalidasi di sini:
	// dibaca saat service dipanggil, gagal di call time bila kosong.
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
