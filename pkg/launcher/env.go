// SPDX-License-Identifier: Apache-2.0
package launcher

import (
	"strings"

	"github.com/hashicorp/go-hclog"
)

// getenv retrieves an environment variable value from an environment list.
func getenv(env []string, key string, defaultVal string) string {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return strings.TrimPrefix(e, prefix)
		}
	}
	return defaultVal
}

// isEnvTrue reports whether an environment variable is set to the literal "1".
func isEnvTrue(env []string, key string) bool {
	return getenv(env, key, "") == "1"
}

// logEnvironmentTrace logs the environment passed to a child process at
// trace level, redacting sensitive values.
func logEnvironmentTrace(env []string, logger hclog.Logger) {
	if !logger.IsTrace() {
		return
	}

	logger.Trace("🌍 Environment variables forwarded to child process", "count", len(env))
	for _, e := range env {
		parts := strings.SplitN(e, "=", 2)
		if len(parts) != 2 {
			continue
		}
		value := parts[1]
		if isSensitiveKey(parts[0]) {
			value = "***"
		}
		logger.Trace("  →", "key", parts[0], "value", value)
	}
}

// isSensitiveKey checks if an environment variable key should be redacted in logs.
func isSensitiveKey(key string) bool {
	sensitiveKeys := map[string]bool{
		"SSH_AUTH_SOCK":        true,
		"GITHUB_TOKEN":         true,
		"PASSWORD":             true,
		"RHX_PASSWORD":         true,
		"RHX_MFA_SECRET":       true,
		"ROBINHOOD_PASSWORD":   true,
		"ROBINHOOD_API_SECRET": true,
	}
	return sensitiveKeys[key]
}
