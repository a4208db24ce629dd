// Package retryfetch implements the retrying GET client used to read from
// Arweave/ArDrive gateways.
//
// A fetch issues one GET, classifies the status code and then either decodes
// the body, waits and tries again (transient statuses only), or reports the
// failure. Every result, including HTTP and transport failures, is returned as
// an *Outcome value; FetchWithRetry never returns a Go error and never panics
// on expected failure modes.
package retryfetch
