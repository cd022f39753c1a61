// Package config は環境変数からサーバー設定を読み込みます。
package config

import "os"

// Config はサーバーの起動設定です。
type Config struct {
	Port      string // HTTPリスンポート
	GinMode   string // Ginの動作モード (debug / release / test)
	StaticDir string // ランディングページを置くディレクトリ
}

// Load は環境変数から設定を構築します。未設定の項目にはデフォルト値を使います。
// .env の読み込みは main 側で godotenv.Load() が行います。
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "release"),
		StaticDir: getEnv("STATIC_DIR", "static"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
