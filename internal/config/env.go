package config

import (
	"os"
	"strconv"
)

type envVar struct {
	name  string
	desc  string
	apply func(*Config, string)
}

var supportedEnvVars = []envVar{
	{
		// Only here for documentation purposes.  Does not override any values in the config as this environment variable
		// points to where the config should be loaded.  It is handled prior to loading the config.
		name:  "LCWATCH_CONFIG_PATH",
		desc:  "Sets the path to the config file.  Default: OS-specific config directory",
		apply: func(c *Config, s string) {}, // Special case, no-op
	},
	{
		name:  "LCWATCH_CONFIG_STORE_PATH",
		desc:  "Sets the path to the tracked-username store file.  Default: next to the config file",
		apply: func(c *Config, s string) { c.Store.Path = s },
	},
	{
		name:  "LCWATCH_CONFIG_API_ENDPOINT",
		desc:  "Sets the LeetCode GraphQL endpoint.  Default: https://leetcode.com/graphql",
		apply: func(c *Config, s string) { c.API.Endpoint = s },
	},
	{
		name:  "LCWATCH_CONFIG_API_SUBMISSION_LIMIT",
		desc:  "Sets how many recent submissions are requested per user.  Default: 20",
		apply: func(c *Config, s string) { applyInt(&c.API.SubmissionLimit, s) },
	},
	{
		name:  "LCWATCH_CONFIG_API_TIMEOUT_SECONDS",
		desc:  "Sets the per-request timeout in seconds.  Default: 10",
		apply: func(c *Config, s string) { applyInt(&c.API.TimeoutSeconds, s) },
	},
	{
		name:  "LCWATCH_CONFIG_API_MAX_IN_FLIGHT",
		desc:  "Sets the concurrent request cap for batched fetches.  Default: 10",
		apply: func(c *Config, s string) { applyInt(&c.API.MaxInFlight, s) },
	},
	{
		name:  "LCWATCH_CONFIG_DIGEST_MAX_USERS",
		desc:  "Sets the largest registry size rendered in one digest.  Default: 5",
		apply: func(c *Config, s string) { applyInt(&c.Digest.MaxUsers, s) },
	},
	{
		name:  "LCWATCH_CONFIG_LOGGING_LEVEL",
		desc:  "Sets the logging level.  One of: debug, info, warn, error.  Default: info",
		apply: func(c *Config, s string) { c.Logging.Level = s },
	},
	{
		name:  "LCWATCH_CONFIG_LOGGING_FILE_PATH",
		desc:  "Sets the logging file path.  Default: OS-specific",
		apply: func(c *Config, s string) { c.Logging.FilePath = s },
	},
}

func applyEnvVarOverrides(c *Config) {
	for _, envVar := range supportedEnvVars {
		if value := os.Getenv(envVar.name); value != "" {
			envVar.apply(c, value)
		}
	}
}

// applyInt parses an integer override, leaving the existing value untouched when the
// override is not a number.  Validation of ranges happens after all overrides apply.
func applyInt(dst *int, s string) {
	if v, err := strconv.Atoi(s); err == nil {
		*dst = v
	}
}
