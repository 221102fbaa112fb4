package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/metglobal/bookingcom-client/internal/testutil"
	"github.com/metglobal/bookingcom-client/pkg/pagination"
	"github.com/metglobal/bookingcom-client/pkg/snapshot"
	"github.com/metglobal/bookingcom-client/pkg/transport"
	"github.com/metglobal/bookingcom-client/pkg/wire"
)

// stubFetcher serves scripted pages, standing in for a real source.
type stubFetcher struct {
	pages map[int]pagination.Page
}

func (s *stubFetcher) FetchPage(ctx context.Context, endpoint string, offset, rows int) (pagination.Page, error) {
	return s.pages[offset], nil
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "empty config defaults to filesystem",
			cfg:     Config{},
			wantErr: false,
		},
		{
			name:    "default config",
			cfg:     DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "redis strategy without client",
			cfg:     Config{Strategy: StrategyRedis},
			wantErr: true,
		},
		{
			name:    "remote strategy without credentials",
			cfg:     Config{Strategy: StrategyRemote},
			wantErr: true,
		},
		{
			name:    "remote strategy without password",
			cfg:     Config{Strategy: StrategyRemote, Username: "affiliate"},
			wantErr: true,
		},
		{
			name:    "unknown strategy",
			cfg:     Config{Strategy: Strategy("carrier-pigeon")},
			wantErr: true,
		},
		{
			name:    "fetcher override skips strategy construction",
			cfg:     Config{Strategy: StrategyRemote, Fetcher: &stubFetcher{}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_DefaultRows(t *testing.T) {
	c, err := New(Config{Fetcher: &stubFetcher{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cursor := c.GetCountries()
	if cursor.Rows() != pagination.DefaultRows {
		t.Errorf("Rows() = %d, want %d", cursor.Rows(), pagination.DefaultRows)
	}
}

func TestClient_RemoteTraversal(t *testing.T) {
	mock := testutil.NewMockProvider()
	defer mock.Close()

	mock.SetPage(EndpointCountries, 0, testutil.CountryPage("ad", "ae", "ag"))
	mock.SetPage(EndpointCountries, 3, testutil.CountryPage("ai", "al"))

	c, err := New(Config{
		Strategy: StrategyRemote,
		Rows:     3,
		BaseURL:  mock.BaseURL(),
		Username: "affiliate",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	records, err := pagination.Collect(context.Background(), c.GetCountries())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("Collect() returned %d records, want 5", len(records))
	}
	if got := records[0].Field("countrycode"); got != "ad" {
		t.Errorf("records[0] countrycode = %q, want %q", got, "ad")
	}
	if got := records[4].Field("countrycode"); got != "al" {
		t.Errorf("records[4] countrycode = %q, want %q", got, "al")
	}

	wantOffsets := []int{0, 3}
	gotOffsets := mock.EndpointOffsets(EndpointCountries)
	if len(gotOffsets) != len(wantOffsets) {
		t.Fatalf("requested offsets = %v, want %v", gotOffsets, wantOffsets)
	}
	for i, want := range wantOffsets {
		if gotOffsets[i] != want {
			t.Errorf("offset[%d] = %d, want %d", i, gotOffsets[i], want)
		}
	}

	if mock.LastUsername != "affiliate" || mock.LastPassword != "secret" {
		t.Errorf("basic auth = %q/%q, want affiliate/secret", mock.LastUsername, mock.LastPassword)
	}
}

func TestClient_RemoteErrorStatus(t *testing.T) {
	mock := testutil.NewMockProvider()
	defer mock.Close()

	mock.SetStatus(EndpointHotels, 401)

	c, err := New(Config{
		Strategy: StrategyRemote,
		BaseURL:  mock.BaseURL(),
		Username: "affiliate",
		Password: "wrong",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = pagination.Collect(context.Background(), c.GetHotels())
	if err == nil {
		t.Fatal("Collect() expected error for 401 response")
	}

	var statusErr *transport.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *transport.StatusError", err)
	}
	if statusErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", statusErr.StatusCode)
	}
}

func TestClient_WithRows(t *testing.T) {
	mock := testutil.NewMockProvider()
	defer mock.Close()

	mock.SetPage(EndpointCountries, 0, testutil.CountryPage("ad", "ae"))
	mock.SetPage(EndpointCountries, 2, testutil.CountryPage("ag"))

	c, err := New(Config{
		Strategy: StrategyRemote,
		BaseURL:  mock.BaseURL(),
		Username: "affiliate",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cursor := c.GetCountries(WithRows(2))
	if cursor.Rows() != 2 {
		t.Fatalf("Rows() = %d, want 2", cursor.Rows())
	}

	records, err := pagination.Collect(context.Background(), cursor)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(records) != 3 {
		t.Errorf("Collect() returned %d records, want 3", len(records))
	}

	gotOffsets := mock.EndpointOffsets(EndpointCountries)
	if len(gotOffsets) != 2 || gotOffsets[0] != 0 || gotOffsets[1] != 2 {
		t.Errorf("requested offsets = %v, want [0 2]", gotOffsets)
	}
}

func TestClient_FilesystemTraversal(t *testing.T) {
	root := t.TempDir()

	dir := filepath.Join(root, EndpointCountries)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	pages := map[int]string{
		0: testutil.CountryPage("ad", "ae"),
		2: testutil.CountryPage("ag"),
	}
	for offset, payload := range pages {
		path := filepath.Join(dir, snapshot.PageFile(offset))
		if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c, err := New(Config{Strategy: StrategyFilesystem, Root: root, Rows: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Two drains of the same cursor must see identical data.
	cursor := c.GetCountries()
	for round := 1; round <= 2; round++ {
		var codes []string
		for cursor.Next(context.Background()) {
			codes = append(codes, cursor.Record().Field("countrycode"))
		}
		if err := cursor.Err(); err != nil {
			t.Fatalf("round %d: Err() = %v", round, err)
		}
		want := []string{"ad", "ae", "ag"}
		if fmt.Sprint(codes) != fmt.Sprint(want) {
			t.Errorf("round %d: codes = %v, want %v", round, codes, want)
		}
	}
}

func TestClient_CustomFetcher(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[int]pagination.Page{
			0: {wire.Record{"name": "alpha"}, wire.Record{"name": "beta"}},
		},
	}

	c, err := New(Config{Fetcher: fetcher, Rows: 10})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	records, err := pagination.Collect(context.Background(), c.GetRegions())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Collect() returned %d records, want 2", len(records))
	}
	if got := records[1].Field("name"); got != "beta" {
		t.Errorf("records[1] name = %q, want %q", got, "beta")
	}
}

func TestEndpoint(t *testing.T) {
	c, err := New(Config{Fetcher: &stubFetcher{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cursor, err := c.Endpoint(EndpointHotels)
	if err != nil {
		t.Fatalf("Endpoint() error = %v", err)
	}
	if cursor.Endpoint() != EndpointHotels {
		t.Errorf("Endpoint() cursor endpoint = %q, want %q", cursor.Endpoint(), EndpointHotels)
	}

	if _, err := c.Endpoint("getMoons"); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("Endpoint(getMoons) error = %v, want ErrUnknownEndpoint", err)
	}
}

func TestCatalog(t *testing.T) {
	if len(Catalog) != 23 {
		t.Fatalf("len(Catalog) = %d, want 23", len(Catalog))
	}
	if Catalog[0] != EndpointCities {
		t.Errorf("Catalog[0] = %q, want %q", Catalog[0], EndpointCities)
	}
	if Catalog[len(Catalog)-1] != EndpointRoomPhotos {
		t.Errorf("Catalog last = %q, want %q", Catalog[len(Catalog)-1], EndpointRoomPhotos)
	}

	seen := make(map[string]bool, len(Catalog))
	for _, name := range Catalog {
		if seen[name] {
			t.Errorf("Catalog contains %q twice", name)
		}
		seen[name] = true
	}
}

func TestAccessors_CoverCatalog(t *testing.T) {
	c, err := New(Config{Fetcher: &stubFetcher{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cursors := []*pagination.Cursor{
		c.GetCities(),
		c.GetCountries(),
		c.GetDistricts(),
		c.GetDistrictHotels(),
		c.GetFacilityTypes(),
		c.GetHotelDescriptionPhotos(),
		c.GetHotelDescriptionTranslations(),
		c.GetHotelDescriptionTypes(),
		c.GetHotelFacilities(),
		c.GetHotelFacilityTypes(),
		c.GetHotelLogoPhotos(),
		c.GetHotelPhotos(),
		c.GetHotelTranslations(),
		c.GetHotelTypes(),
		c.GetHotels(),
		c.GetRegions(),
		c.GetRegionHotels(),
		c.GetRooms(),
		c.GetRoomTypes(),
		c.GetRoomFacilityTypes(),
		c.GetRoomFacilities(),
		c.GetRoomTranslations(),
		c.GetRoomPhotos(),
	}

	if len(cursors) != len(Catalog) {
		t.Fatalf("accessor count = %d, want %d", len(cursors), len(Catalog))
	}
	for i, cursor := range cursors {
		if cursor.Endpoint() != Catalog[i] {
			t.Errorf("accessor %d endpoint = %q, want %q", i, cursor.Endpoint(), Catalog[i])
		}
	}
}
