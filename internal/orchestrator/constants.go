package orchestrator

import (
	"os"
	"strings"
	"time"
)

// Timeout constants for the publish workflow
var (
	// DefaultWorkflowTimeout bounds one full publish run (five sequential
	// remote calls, each already capped by the transport timeout).
	DefaultWorkflowTimeout = getTimeoutOrDefault("PUBLISHPR_WORKFLOW_TIMEOUT", 5*time.Minute, 5*time.Second)
)

// isTestEnvironment detects if we're running under go test
func isTestEnvironment() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, ".test") || strings.Contains(arg, "go test") {
			return true
		}
	}
	return os.Getenv("GO_TEST") == "true"
}

// getTimeoutOrDefault returns production timeout or test timeout based on environment
func getTimeoutOrDefault(envVar string, prodDefault, testDefault time.Duration) time.Duration {
	if env := os.Getenv(envVar); env != "" {
		if duration, err := time.ParseDuration(env); err == nil {
			return duration
		}
	}
	if isTestEnvironment() {
		return testDefault
	}
	return prodDefault
}
