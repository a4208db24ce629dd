package config

const (
	// Fetch Defaults
	DefaultFetchRetries      = 8
	DefaultFetchRetryDelayMs = 200
	DefaultFetchSuppressLogs = false
	DefaultFetchResponseMode = "json"
	DefaultFetchAcceptJSON   = true

	// HTTP Client Defaults
	DefaultHTTPTimeoutSecs     = 30
	DefaultHTTPUserAgent       = "arnetwork/1.0"
	DefaultHTTPFollowRedirects = true
	DefaultHTTPMaxRedirects    = 10
	DefaultHTTPEnableHTTP2     = true

	// Compare Defaults
	DefaultCompareGatewayA = "https://arweave.net"
	DefaultCompareGatewayB = "https://ar-io.net"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv overrides the config file location.
	ConfigPathEnv = "ARNETWORK_CONFIG_PATH"

	maxConfigFileSize = 10 * 1024 * 1024
)
