package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"BOT_LOG_LEVEL"`   // debug, info, warn, error
	Format     string          `yaml:"format" env:"BOT_LOG_FORMAT"` // console, json
	File       string          `yaml:"file" env:"BOT_LOG_FILE"`     // relative paths resolve under .bot/logs
	DebugMode  bool            `yaml:"debug_mode" env:"BOT_DEBUG"`  // master toggle, false = no logging
	Categories map[string]bool `yaml:"categories"`                  // per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false.
// Returns true if debug_mode is true and the category is enabled or not listed.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}
