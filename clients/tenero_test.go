package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pbtc21/token-health/utils"
)

func envelope(data string) string {
	return fmt.Sprintf(`{"statusCode":200,"message":"OK","data":%s}`, data)
}

func TestTeneroClient(t *testing.T) {
	const address = "SP1AY6K3PQV5MRT6R4S671NWW2FRVPKM0BR162CT6.leo-token"

	t.Run("token info", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/tokens/"+address {
				t.Errorf("path = %q", r.URL.Path)
			}
			fmt.Fprint(w, envelope(`{"name":"Leo","symbol":"LEO","price_usd":0.001,"market_cap_usd":1000000}`))
		}))
		defer server.Close()

		info, err := NewTeneroClient(server.URL).TokenInfo(context.Background(), address)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.Symbol != "LEO" || info.PriceUSD != 0.001 {
			t.Errorf("info = %+v", info)
		}
	})

	t.Run("holder percentages", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/holder_percentages") {
				t.Errorf("path = %q", r.URL.Path)
			}
			fmt.Fprint(w, envelope(`{"top_10_percent":85.5,"top_25_percent":92.1,"top_50_percent":95.0}`))
		}))
		defer server.Close()

		percentages, err := NewTeneroClient(server.URL).HolderPercentages(context.Background(), address)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if percentages.Top10Percent != 85.5 {
			t.Errorf("percentages = %+v", percentages)
		}
	})

	t.Run("holder stats keeps counters as strings", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, envelope(`{"holder_count":"1000","fresh_1w":"600","inactive_6m":"800","updated_at":1700000000}`))
		}))
		defer server.Close()

		stats, err := NewTeneroClient(server.URL).HolderStats(context.Background(), address)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.HolderCount != "1000" || stats.Fresh1w != "600" {
			t.Errorf("stats = %+v", stats)
		}
	})

	t.Run("ohlc passes period and limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("period") != "1h" || q.Get("limit") != "168" {
				t.Errorf("query = %v", q)
			}
			fmt.Fprint(w, envelope(`[{"time":1,"open":1,"high":2,"low":0.5,"close":1.5,"volume":100}]`))
		}))
		defer server.Close()

		candles, err := NewTeneroClient(server.URL).OHLC(context.Background(), address, "1h", 168)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candles) != 1 || candles[0].Volume != 100 {
			t.Errorf("candles = %+v", candles)
		}
	})

	t.Run("transport error carries a status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewTeneroClient(server.URL).TokenInfo(context.Background(), address)
		if err == nil {
			t.Fatal("expected error for non-2xx response")
		}
		if !strings.Contains(err.Error(), "Tenero API error: 502") {
			t.Errorf("error = %v", err)
		}
		if utils.StatusOf(err, 0) != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", utils.StatusOf(err, 0))
		}
	})

	t.Run("business error in envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"statusCode":404,"message":"token not found","data":null}`)
		}))
		defer server.Close()

		_, err := NewTeneroClient(server.URL).TokenInfo(context.Background(), address)
		if err == nil {
			t.Fatal("expected error for business error envelope")
		}
		if !strings.Contains(err.Error(), "Tenero error: token not found") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("defaults to the production endpoint", func(t *testing.T) {
		if NewTeneroClient("").baseURL != DefaultTeneroBaseURL {
			t.Error("empty baseURL did not select the default")
		}
	})
}
