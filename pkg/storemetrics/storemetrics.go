package storemetrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/HLB-AdminService/pkg/metrics"
)

// Transport оборачивает http.RoundTripper и снимает метрики исходящих
// запросов к внешнему хранилищу
type Transport struct {
	base    http.RoundTripper
	metrics *metrics.Metrics
	store   string
}

// Wrap создает обертку над base (nil — http.DefaultTransport)
func Wrap(base http.RoundTripper, m *metrics.Metrics, store string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, metrics: m, store: store}
}

// RoundTrip выполняет запрос и фиксирует длительность и результат
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	outcome := "transport_error"
	if err == nil {
		outcome = fmt.Sprintf("%dxx", resp.StatusCode/100)
	}
	t.metrics.ObserveStoreRequest(t.store, req.Method, outcome, time.Since(start))

	return resp, err
}
