package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("environment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("environment")
	}()

	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("TEST_INT", "7")
	os.Setenv("TEST_NOT_INT", "seven")
	defer func() {
		os.Unsetenv("TEST_INT")
		os.Unsetenv("TEST_NOT_INT")
	}()

	if got := getEnvInt("TEST_INT", 3); got != 7 {
		t.Errorf("getEnvInt() = %v, want %v", got, 7)
	}

	if got := getEnvInt("TEST_NOT_INT", 3); got != 3 {
		t.Errorf("getEnvInt() with invalid value = %v, want fallback %v", got, 3)
	}

	if got := getEnvInt("TEST_MISSING_INT", 3); got != 3 {
		t.Errorf("getEnvInt() with missing value = %v, want fallback %v", got, 3)
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("environment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("environment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("environment")
}

func TestGet(t *testing.T) {
	resetForTesting()

	// Get should create a new config if none exists
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	// Get should return the same config on subsequent calls
	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	os.Unsetenv("botToken")
	os.Unsetenv("devGuildId")
	os.Unsetenv("dataDir")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("maxWarnings")
	os.Unsetenv("PORT")
	os.Unsetenv("environment")

	resetForTesting()
	config, _ := Load()

	if config.DataDir != "data" {
		t.Errorf("DataDir default = %v, want %v", config.DataDir, "data")
	}

	if config.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL default = %v, want %v", config.MongoDBURL, "mongodb://localhost:27017")
	}

	if config.DBName != "Warden" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "Warden")
	}

	if config.MaxWarnings != 5 {
		t.Errorf("MaxWarnings default = %v, want %v", config.MaxWarnings, 5)
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}
}

func TestWarningsFile(t *testing.T) {
	os.Setenv("dataDir", "custom-data")
	defer os.Unsetenv("dataDir")

	resetForTesting()
	config, _ := Load()

	want := filepath.Join("custom-data", "warnings.json")
	if got := config.WarningsFile(); got != want {
		t.Errorf("WarningsFile() = %v, want %v", got, want)
	}
}
