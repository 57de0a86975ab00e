package resource

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"weather-api/configs"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// init loads application properties from YAML
func init() {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		Init(value)
		return
	}
	if _, err := os.Stat("configs/application.yml"); err == nil {
		Init("configs/application.yml")
		return
	}
	InitFromBytes(configs.ApplicationYAML)
}

// Init reads the properties file at filepath
func Init(filepath string) {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	resolveProperties()
}

// InitFromBytes reads properties from an in-memory YAML document
func InitFromBytes(content []byte) {
	viper.SetConfigType("yml")

	if err := viper.ReadConfig(bytes.NewReader(content)); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	resolveProperties()
}

func resolveProperties() {
	properties := make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), properties)

	for key, value := range properties {
		viper.Set(key, value)
	}
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment variable or its default
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetInt32(key string) int32 {
	return viper.GetInt32(key)
}

func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// GetStringList reads a YAML list or a comma separated string, dropping blank items
func GetStringList(key string) []string {
	var items []string
	if value, ok := viper.Get(key).(string); ok {
		items = strings.Split(value, ",")
	} else {
		items = viper.GetStringSlice(key)
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Set overrides a property at runtime
func Set(key string, value any) {
	viper.Set(key, value)
}
