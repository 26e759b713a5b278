package daykeep

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const coingeckoBase = "https://api.coingecko.com/api/v3"

// coingeckoIDs maps common tickers to CoinGecko identifiers. Symbols
// outside this table have no live quote and keep their stored price.
var coingeckoIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"ICP":   "internet-computer",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"BNB":   "binancecoin",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"SOL":   "solana",
	"DOGE":  "dogecoin",
	"DOT":   "polkadot",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"UNI":   "uniswap",
	"ATOM":  "cosmos",
	"LTC":   "litecoin",
	"BCH":   "bitcoin-cash",
	"XLM":   "stellar",
	"ALGO":  "algorand",
}

// MarketAsset is one row of the top-of-market listing.
type MarketAsset struct {
	Symbol string
	Name   string
	Price  float64
}

type quote struct {
	price float64
	at    time.Time
}

// PriceService fetches live USD quotes from CoinGecko. Quotes are cached
// as short-lived snapshots; callers treat the result as a point-in-time
// mapping and fall back to stored prices for anything missing.
type PriceService struct {
	Client        *http.Client
	QuoteTTL      time.Duration
	QuoteRetries  int
	MarketTTL     time.Duration
	MarketRetries int

	now func() time.Time

	mu       sync.Mutex
	quotes   map[string]quote
	market   []MarketAsset
	marketAt time.Time
}

// NewPriceService returns a PriceService with the default staleness
// windows: 30 seconds for quotes, 5 minutes for the market listing.
func NewPriceService() *PriceService {
	return &PriceService{
		Client:        http.DefaultClient,
		QuoteTTL:      30 * time.Second,
		QuoteRetries:  2,
		MarketTTL:     5 * time.Minute,
		MarketRetries: 1,
		now:           time.Now,
		quotes:        make(map[string]quote),
	}
}

// LivePrices returns a snapshot mapping of uppercased symbol to USD price
// for every requested symbol that has a CoinGecko id. The mapping may be
// partial; on a fetch failure it returns whatever the cache still holds
// together with the error.
func (s *PriceService) LivePrices(symbols []string) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	prices := make(map[string]float64)
	var staleIDs []string
	staleSymbols := make(map[string]string) // id -> symbol

	seen := make(map[string]bool)
	for _, raw := range symbols {
		symbol := NormalizeSymbol(raw)
		if seen[symbol] {
			continue
		}
		seen[symbol] = true

		id, ok := coingeckoIDs[symbol]
		if !ok {
			continue // unsupported symbol, caller falls back to stored price
		}
		if q, ok := s.quotes[symbol]; ok && now.Sub(q.at) < s.QuoteTTL {
			prices[symbol] = q.price
			continue
		}
		staleIDs = append(staleIDs, id)
		staleSymbols[id] = symbol
	}

	if len(staleIDs) == 0 {
		return prices, nil
	}
	sort.Strings(staleIDs)

	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		coingeckoBase, url.QueryEscape(strings.Join(staleIDs, ",")))

	var payload any
	if err := s.get(addr, s.QuoteRetries, &payload); err != nil {
		// serve what the cache still has, expired or not
		for _, id := range staleIDs {
			symbol := staleSymbols[id]
			if q, ok := s.quotes[symbol]; ok {
				prices[symbol] = q.price
			}
		}
		return prices, err
	}

	for _, id := range staleIDs {
		symbol := staleSymbols[id]
		price, err := jsonUSD(payload, id)
		if err != nil {
			log.Printf("no usable quote for %s (%s): %v", symbol, id, err)
			continue
		}
		s.quotes[symbol] = quote{price: price, at: now}
		prices[symbol] = price
	}
	return prices, nil
}

// jsonUSD extracts the usd quote for one coin id from the simple/price
// payload.
func jsonUSD(payload any, id string) (float64, error) {
	path := fmt.Sprintf("$[%q].usd", id)
	jval, err := jsonpath.Get(path, payload)
	if err != nil {
		return 0, fmt.Errorf("error parsing quote payload: %q %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer, keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("quote at %q is not a number: %v", path, jval)
	}
	return val, nil
}

// TopMarket returns the top n assets by market capitalization.
func (s *PriceService) TopMarket(n int) ([]MarketAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.market != nil && now.Sub(s.marketAt) < s.MarketTTL && len(s.market) >= n {
		return s.market[:n], nil
	}

	addr := fmt.Sprintf("%s/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=%d&page=1&sparkline=false",
		coingeckoBase, n)

	var payload []struct {
		Symbol       string  `json:"symbol"`
		Name         string  `json:"name"`
		CurrentPrice float64 `json:"current_price"`
	}
	if err := s.get(addr, s.MarketRetries, &payload); err != nil {
		return nil, err
	}

	assets := make([]MarketAsset, 0, len(payload))
	for _, coin := range payload {
		assets = append(assets, MarketAsset{
			Symbol: NormalizeSymbol(coin.Symbol),
			Name:   coin.Name,
			Price:  coin.CurrentPrice,
		})
	}
	s.market, s.marketAt = assets, now
	return assets, nil
}

// get performs an HTTP GET with bounded retries and unmarshals the JSON
// response into data.
func (s *PriceService) get(addr string, retries int, data any) error {
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			log.Printf("retrying (%d/%d) GET %s: %v", attempt, retries, addr, err)
		}
		if err = jwget(s.Client, addr, data); err == nil {
			return nil
		}
	}
	return err
}

// jwget performs an HTTP GET request and unmarshals the JSON response
// into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
