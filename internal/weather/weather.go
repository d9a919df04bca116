// Package weather turns a city name into a one-sentence forecast.
package weather

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "log/slog"

	"github.com/tidwall/gjson"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	// Apology is what the user hears whenever the lookup fails,
	// whatever the actual reason was.
	Apology = "Hava durumuna şu an ulaşamadım. Birazdan tekrar sorar mısın?"
)

type Config struct {
	HTTPClient  *http.Client
	GeocodeURL  string
	ForecastURL string
}

// Client does the two-step lookup: geocode the city name, then fetch
// the day-0 daily forecast for the coordinate.
type Client struct {
	http        *http.Client
	geocodeURL  string
	forecastURL string
}

func NewClient(cfg Config) *Client {
	c := &Client{
		http:        cfg.HTTPClient,
		geocodeURL:  cfg.GeocodeURL,
		forecastURL: cfg.ForecastURL,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
	}
	if c.geocodeURL == "" {
		c.geocodeURL = defaultGeocodeURL
	}
	if c.forecastURL == "" {
		c.forecastURL = defaultForecastURL
	}
	return c
}

type place struct {
	Name string
	Lat  float64
	Lon  float64
}

// Forecast never fails: any transport or decoding problem collapses
// into the fixed apology sentence.
func (c *Client) Forecast(ctx context.Context, city string) string {
	p, err := c.geocode(ctx, city)
	if err != nil {
		log.Warn("geocode failed", "city", city, "err", err)
		return Apology
	}

	text, err := c.daily(ctx, p)
	if err != nil {
		log.Warn("forecast failed", "city", city, "err", err)
		return Apology
	}
	return text
}

func (c *Client) geocode(ctx context.Context, city string) (place, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")
	q.Set("language", "tr")
	q.Set("format", "json")

	body, err := c.get(ctx, c.geocodeURL+"?"+q.Encode())
	if err != nil {
		return place{}, err
	}

	res := gjson.GetBytes(body, "results.0")
	if !res.Exists() {
		return place{}, fmt.Errorf("no geocode result for %q", city)
	}
	return place{
		Name: res.Get("name").String(),
		Lat:  res.Get("latitude").Float(),
		Lon:  res.Get("longitude").Float(),
	}, nil
}

func (c *Client) daily(ctx context.Context, p place) (string, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(p.Lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(p.Lon, 'f', 4, 64))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	q.Set("timezone", "auto")

	body, err := c.get(ctx, c.forecastURL+"?"+q.Encode())
	if err != nil {
		return "", err
	}

	min := gjson.GetBytes(body, "daily.temperature_2m_min.0")
	max := gjson.GetBytes(body, "daily.temperature_2m_max.0")
	pop := gjson.GetBytes(body, "daily.precipitation_probability_max.0")
	if !min.Exists() || !max.Exists() || !pop.Exists() {
		return "", fmt.Errorf("malformed forecast response")
	}

	return fmt.Sprintf(
		"%s için bugün: en düşük %s°, en yüksek %s° bekleniyor, yağış ihtimali yüzde %d.",
		p.Name, trimDegree(min.Float()), trimDegree(max.Float()),
		int(math.Round(pop.Float())),
	), nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// trimDegree drops the trailing .0 so the sentence reads naturally
// when spoken.
func trimDegree(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
