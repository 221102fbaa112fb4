package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

// Manifest describes one snapshot run: where the data came from, how it
// was paged, and what was captured per endpoint.
type Manifest struct {
	// RunID uniquely identifies the mirror run that produced the
	// snapshot. ULIDs sort by creation time.
	RunID string `yaml:"run_id"`

	// CreatedAt is the run start time in UTC.
	CreatedAt time.Time `yaml:"created_at"`

	// BaseURL is the provider API root the data was fetched from.
	BaseURL string `yaml:"base_url"`

	// Rows is the page size the snapshot was fetched with. Fetchers
	// replaying the snapshot must use the same value, or offsets will
	// not line up.
	Rows int `yaml:"rows"`

	// Endpoints holds per-endpoint capture statistics.
	Endpoints map[string]EndpointStats `yaml:"endpoints"`
}

// EndpointStats summarizes one endpoint's capture.
type EndpointStats struct {
	Pages   int `yaml:"pages"`
	Records int `yaml:"records"`
	Bytes   int `yaml:"bytes"`
}

// NewManifest creates a manifest for a run starting now.
func NewManifest(baseURL string, rows int) *Manifest {
	return &Manifest{
		RunID:     ulid.Make().String(),
		CreatedAt: time.Now().UTC(),
		BaseURL:   baseURL,
		Rows:      rows,
		Endpoints: make(map[string]EndpointStats),
	}
}

// Observe accumulates one captured page into the endpoint's statistics.
func (m *Manifest) Observe(endpoint string, records, bytes int) {
	stats := m.Endpoints[endpoint]
	stats.Pages++
	stats.Records += records
	stats.Bytes += bytes
	m.Endpoints[endpoint] = stats
}

// TotalPages returns the page count across all endpoints.
func (m *Manifest) TotalPages() int {
	total := 0
	for _, stats := range m.Endpoints {
		total += stats.Pages
	}
	return total
}

// TotalRecords returns the record count across all endpoints.
func (m *Manifest) TotalRecords() int {
	total := 0
	for _, stats := range m.Endpoints {
		total += stats.Records
	}
	return total
}

// TotalBytes returns the payload byte count across all endpoints.
func (m *Manifest) TotalBytes() int {
	total := 0
	for _, stats := range m.Endpoints {
		total += stats.Bytes
	}
	return total
}

// Encode renders the manifest as YAML.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return data, nil
}

// DecodeManifest parses a YAML manifest.
func DecodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// ReadManifest loads the manifest from a snapshot root directory.
func ReadManifest(root string) (*Manifest, error) {
	data, err := os.ReadFile(ManifestPath(root))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return DecodeManifest(data)
}

// ManifestPath returns the manifest location inside a snapshot root.
func ManifestPath(root string) string {
	if root == "" {
		root = DefaultRoot
	}
	return filepath.Join(root, ManifestFile)
}
