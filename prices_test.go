package daykeep

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// fakeTransport answers every request with a canned body and counts the
// requests it served.
type fakeTransport struct {
	body   string
	status int
	calls  int
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.calls++
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Body:       io.NopCloser(strings.NewReader(f.body)),
		Request:    req,
	}, nil
}

func testService(transport *fakeTransport) *PriceService {
	s := NewPriceService()
	s.Client = &http.Client{Transport: transport}
	return s
}

func TestLivePrices(t *testing.T) {
	transport := &fakeTransport{body: `{"bitcoin":{"usd":65000.5},"ethereum":{"usd":3200}}`}
	s := testService(transport)

	prices, err := s.LivePrices([]string{"btc", "ETH", "btc"})
	if err != nil {
		t.Fatalf("LivePrices: %v", err)
	}
	if prices["BTC"] != 65000.5 {
		t.Errorf("BTC = %v, want 65000.5", prices["BTC"])
	}
	if prices["ETH"] != 3200 {
		t.Errorf("ETH = %v, want 3200", prices["ETH"])
	}
	// Duplicated symbols collapse into one batched request.
	if transport.calls != 1 {
		t.Errorf("made %d requests, want 1", transport.calls)
	}
}

// Symbols without a CoinGecko id are silently skipped, the caller falls
// back to stored prices for them.
func TestLivePricesUnknownSymbol(t *testing.T) {
	transport := &fakeTransport{body: `{"bitcoin":{"usd":65000}}`}
	s := testService(transport)

	prices, err := s.LivePrices([]string{"BTC", "NOPE"})
	if err != nil {
		t.Fatalf("LivePrices: %v", err)
	}
	if _, ok := prices["NOPE"]; ok {
		t.Errorf("unsupported symbol must not appear in the result")
	}
	if prices["BTC"] != 65000 {
		t.Errorf("BTC = %v, want 65000", prices["BTC"])
	}
}

func TestLivePricesCached(t *testing.T) {
	transport := &fakeTransport{body: `{"bitcoin":{"usd":65000}}`}
	s := testService(transport)

	clock := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	if _, err := s.LivePrices([]string{"BTC"}); err != nil {
		t.Fatal(err)
	}
	// Within the TTL the cache answers, no request goes out.
	clock = clock.Add(10 * time.Second)
	prices, err := s.LivePrices([]string{"BTC"})
	if err != nil {
		t.Fatal(err)
	}
	if prices["BTC"] != 65000 {
		t.Errorf("BTC = %v, want cached 65000", prices["BTC"])
	}
	if transport.calls != 1 {
		t.Fatalf("made %d requests, want 1 (cache must serve the second call)", transport.calls)
	}

	// Past the TTL the quote is refetched.
	clock = clock.Add(s.QuoteTTL)
	if _, err := s.LivePrices([]string{"BTC"}); err != nil {
		t.Fatal(err)
	}
	if transport.calls != 2 {
		t.Errorf("made %d requests, want 2 after the TTL", transport.calls)
	}
}

// A failing fetch retries, then serves whatever the cache still holds
// together with the error.
func TestLivePricesFailureServesStale(t *testing.T) {
	transport := &fakeTransport{body: `{"bitcoin":{"usd":65000}}`}
	s := testService(transport)

	clock := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	if _, err := s.LivePrices([]string{"BTC"}); err != nil {
		t.Fatal(err)
	}

	clock = clock.Add(time.Hour)
	transport.status = http.StatusTooManyRequests
	calls := transport.calls

	prices, err := s.LivePrices([]string{"BTC"})
	if err == nil {
		t.Fatal("expected an error from the failing fetch")
	}
	if prices["BTC"] != 65000 {
		t.Errorf("stale cache must still be served, got %v", prices["BTC"])
	}
	if got := transport.calls - calls; got != s.QuoteRetries+1 {
		t.Errorf("made %d attempts, want %d", got, s.QuoteRetries+1)
	}
}

func TestTopMarket(t *testing.T) {
	transport := &fakeTransport{body: `[
		{"symbol":"btc","name":"Bitcoin","current_price":65000},
		{"symbol":"eth","name":"Ethereum","current_price":3200}
	]`}
	s := testService(transport)

	assets, err := s.TopMarket(2)
	if err != nil {
		t.Fatalf("TopMarket: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("got %d assets, want 2", len(assets))
	}
	if assets[0].Symbol != "BTC" || assets[0].Name != "Bitcoin" || assets[0].Price != 65000 {
		t.Errorf("assets[0] = %+v", assets[0])
	}

	// Second call within the TTL is served from the cache.
	if _, err := s.TopMarket(2); err != nil {
		t.Fatal(err)
	}
	if transport.calls != 1 {
		t.Errorf("made %d requests, want 1", transport.calls)
	}
}
