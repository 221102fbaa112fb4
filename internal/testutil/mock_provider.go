// Package testutil provides testing utilities for the booking.com client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// MockProvider is a configurable mock of the provider's distribution
// API. It serves scripted pages per endpoint and offset, and answers
// offsets beyond the scripted data with an empty page document, the way
// the real API signals end-of-data.
type MockProvider struct {
	server *httptest.Server
	mu     sync.RWMutex
	pages  map[string]map[int]string
	status map[string]int

	// Tracking
	RequestCount int
	Offsets      map[string][]int
	LastUsername string
	LastPassword string
	LastAgent    string
}

// NewMockProvider creates a started mock provider server.
func NewMockProvider() *MockProvider {
	mock := &MockProvider{
		pages:   make(map[string]map[int]string),
		status:  make(map[string]int),
		Offsets: make(map[string][]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(mock.handle))

	return mock
}

// BaseURL returns the mock's API root, suitable for transport.Config.
func (m *MockProvider) BaseURL() string {
	return m.server.URL + "/xml/"
}

// Close shuts down the mock server.
func (m *MockProvider) Close() {
	m.server.Close()
}

// SetPage scripts the payload served for an endpoint at an offset.
func (m *MockProvider) SetPage(endpoint string, offset int, payload string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pages[endpoint] == nil {
		m.pages[endpoint] = make(map[int]string)
	}
	m.pages[endpoint][offset] = payload
}

// SetStatus forces every request to an endpoint to answer with the
// given HTTP status instead of a page.
func (m *MockProvider) SetStatus(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[endpoint] = status
}

// Reset clears all scripted pages and tracking counters.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = make(map[string]map[int]string)
	m.status = make(map[string]int)
	m.RequestCount = 0
	m.Offsets = make(map[string][]int)
	m.LastUsername = ""
	m.LastPassword = ""
	m.LastAgent = ""
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockProvider) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// EndpointOffsets returns the offsets requested for an endpoint, in
// request order.
func (m *MockProvider) EndpointOffsets(endpoint string) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int(nil), m.Offsets[endpoint]...)
}

func (m *MockProvider) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Request paths look like /xml/bookings.getCountries.
	name := path.Base(r.URL.Path)
	if !strings.HasPrefix(name, "bookings.") {
		http.Error(w, "unknown path", http.StatusNotFound)
		return
	}
	endpoint := strings.TrimPrefix(name, "bookings.")

	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil {
		http.Error(w, "bad offset", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.RequestCount++
	m.Offsets[endpoint] = append(m.Offsets[endpoint], offset)
	m.LastUsername, m.LastPassword, _ = r.BasicAuth()
	m.LastAgent = r.Header.Get("User-Agent")
	forced := m.status[endpoint]
	payload, scripted := m.pages[endpoint][offset]
	m.mu.Unlock()

	if forced != 0 {
		w.WriteHeader(forced)
		return
	}

	if !scripted {
		payload = fmt.Sprintf("<%s></%s>", endpoint, endpoint)
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(payload))
}

// PageXML renders a provider page payload with one result element per
// record. Record fields are emitted in sorted order so payloads are
// deterministic.
func PageXML(endpoint string, records ...map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" standalone="yes"?>`+"\n")
	fmt.Fprintf(&b, "<%s>\n", endpoint)
	for _, record := range records {
		b.WriteString("  <result>\n")
		fields := make([]string, 0, len(record))
		for field := range record {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(&b, "    <%s>%s</%s>\n", field, record[field], field)
		}
		b.WriteString("  </result>\n")
	}
	fmt.Fprintf(&b, "</%s>\n", endpoint)
	return b.String()
}

// CountryPage renders a getCountries page with one record per country
// code, a convenient shorthand for pagination tests.
func CountryPage(codes ...string) string {
	records := make([]map[string]string, 0, len(codes))
	for _, code := range codes {
		records = append(records, map[string]string{
			"countrycode":  code,
			"languagecode": "en",
		})
	}
	return PageXML("getCountries", records...)
}
