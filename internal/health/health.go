package health

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Status classifies the outcome of a health probe.
type Status int

const (
	// Healthy means the endpoint answered with a 2xx status.
	Healthy Status = iota
	// Unhealthy means the endpoint answered with a non-2xx status.
	Unhealthy
	// Unreachable means the request never produced an HTTP response.
	Unreachable
)

// Result is the outcome of a single probe. Code is set for Healthy and
// Unhealthy, Err for Unreachable.
type Result struct {
	Status Status
	Code   int
	Err    error
}

// Progress wraps a busy indicator shown while a probe is in flight. The
// returned stop function clears the indicator before the outcome is printed.
type Progress func(message string) (stop func())

// URL derives the health endpoint from the instance URL and the separately
// configured HTTP port. The instance URL usually carries the gRPC port, so
// only its host part is kept: everything before the first ':', or the whole
// string when it has none.
func URL(instanceURL, httpPort string) string {
	host := instanceURL
	if i := strings.Index(instanceURL, ":"); i >= 0 {
		host = instanceURL[:i]
	}
	return fmt.Sprintf("http://%s:%s/health", host, httpPort)
}

// Check issues one GET against url and classifies the response. The body is
// ignored. There are no retries and no timeout beyond the transport default.
func Check(client *resty.Client, url string) Result {
	resp, err := client.R().Get(url)
	if err != nil {
		return Result{Status: Unreachable, Err: err}
	}
	if resp.IsSuccess() {
		return Result{Status: Healthy, Code: resp.StatusCode()}
	}
	return Result{Status: Unhealthy, Code: resp.StatusCode()}
}

// CheckWithProgress runs Check under the given progress indicator. A nil
// progress runs the probe bare.
func CheckWithProgress(client *resty.Client, url, message string, progress Progress) Result {
	if progress != nil {
		stop := progress(message)
		defer stop()
	}
	return Check(client, url)
}
