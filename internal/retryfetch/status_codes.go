package retryfetch

import "sort"

// retryableStatusCodes are statuses treated as transient: timeouts, rate
// limits and gateway/CDN errors (including the Cloudflare 52x family and the
// 598/599 network timeout conventions). Never mutated.
var retryableStatusCodes = map[int]struct{}{
	408: {}, // Request Timeout
	429: {}, // Too Many Requests
	440: {}, // Login Time-out
	460: {}, // Client closed connection (AWS ELB)
	499: {}, // Client Closed Request
	500: {}, // Internal Server Error
	502: {}, // Bad Gateway
	503: {}, // Service Unavailable
	504: {}, // Gateway Timeout
	520: {}, // Web Server Returned an Unknown Error
	521: {}, // Web Server Is Down
	522: {}, // Connection Timed Out
	523: {}, // Origin Is Unreachable
	524: {}, // A Timeout Occurred
	525: {}, // SSL Handshake Failed
	527: {}, // Railgun Error
	598: {}, // Network read timeout
	599: {}, // Network connect timeout
}

// IsRetryableStatus reports whether code belongs to the transient status set.
func IsRetryableStatus(code int) bool {
	_, ok := retryableStatusCodes[code]
	return ok
}

// IsErrorStatus reports whether code is an HTTP client or server error (400-599).
func IsErrorStatus(code int) bool {
	return code >= 400 && code <= 599
}

// RetryableStatusCodes returns the transient status set in ascending order.
// The returned slice is a copy.
func RetryableStatusCodes() []int {
	codes := make([]int, 0, len(retryableStatusCodes))
	for code := range retryableStatusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
