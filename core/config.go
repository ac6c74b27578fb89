package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "KidsMentor")
	Conf.SetDefault("address", ":3000")
	Conf.SetDefault("apiBaseURL", "http://localhost:8000")
	Conf.SetDefault("httpTimeout", 15*time.Second)
	Conf.SetDefault("storage", "file") // file | sqlite | postgres | memory
	Conf.SetDefault("dataDir", "data")
	Conf.SetDefault("sqlitePath", filepath.Join("data", "portal.db"))
	Conf.SetDefault("databaseURL", "")
	Conf.SetDefault("gradeFeedInterval", 10*time.Second)
	Conf.SetDefault("faceScanInterval", 800*time.Millisecond)
	Conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}
