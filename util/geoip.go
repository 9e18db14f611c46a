package util

import (
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/oschwald/geoip2-golang"
	cache "github.com/patrickmn/go-cache"
)

const (
	geoCacheTTL     = 24 * time.Hour
	geoCacheCleanup = time.Hour
)

// IPLocation is the result of a GeoIP lookup. Both fields may be empty.
type IPLocation struct {
	City    string
	Country string
}

// String renders the location as "City/Country", or whichever part is known.
func (l IPLocation) String() string {
	switch {
	case l.City != "" && l.Country != "":
		return l.City + "/" + l.Country
	case l.Country != "":
		return l.Country
	}
	return l.City
}

// geoLocator resolves client addresses for the request log. The reader is nil
// until a database is opened; lookups then only consult the cache.
type geoLocator struct {
	reader *geoip2.Reader
	cache  *cache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

var geo = &geoLocator{cache: cache.New(geoCacheTTL, geoCacheCleanup)}

// InitGeoIP opens a GeoIP2/GeoLite2 .mmdb file. An empty dbPath falls back to
// GEOIP_DB_PATH; with neither set locations stay empty.
func InitGeoIP(dbPath string) error {
	if dbPath == "" {
		dbPath = os.Getenv("GEOIP_DB_PATH")
	}
	if dbPath == "" {
		return nil
	}
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geo.reader = r
	Logger().Info().Str("path", dbPath).Msg("geoip database loaded")
	return nil
}

func CloseGeoIP() {
	if geo.reader != nil {
		_ = geo.reader.Close()
		geo.reader = nil
	}
}

// GetIPLocation resolves ip through the cache and then the GeoIP database.
// Private, loopback and unparsable addresses resolve to an empty location.
func GetIPLocation(ip string) IPLocation {
	addr := net.ParseIP(ip)
	if addr == nil || addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() {
		return IPLocation{}
	}
	return geo.locate(ip, addr)
}

func (g *geoLocator) locate(ip string, addr net.IP) IPLocation {
	if v, ok := g.cache.Get(ip); ok {
		if loc, ok := v.(IPLocation); ok {
			g.hits.Add(1)
			return loc
		}
	}
	g.misses.Add(1)

	if g.reader == nil {
		return IPLocation{}
	}
	rec, err := g.reader.City(addr)
	if err != nil {
		Logger().Debug().Err(err).Str("ip", ip).Msg("geoip lookup failed")
		return IPLocation{}
	}

	loc := IPLocation{City: rec.City.Names["en"], Country: rec.Country.Names["en"]}
	if loc.Country == "" {
		loc.Country = rec.Country.IsoCode
	}
	g.cache.SetDefault(ip, loc)
	return loc
}

// GetGeoIPCacheMetrics returns the cache hits, misses and current size.
func GetGeoIPCacheMetrics() (hits int64, misses int64, size int) {
	return geo.hits.Load(), geo.misses.Load(), geo.cache.ItemCount()
}
