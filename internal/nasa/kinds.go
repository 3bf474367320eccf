// Package nasa holds the upstream provider catalog: the data kinds the proxy
// knows about, the hosts they live on, the shared HTTP client used to reach
// them, and the canned fallback payloads served when they are down.
package nasa

import "time"

// Kind identifies one category of NASA data the proxy serves.
type Kind string

const (
	KindAPOD               Kind = "apod"
	KindMarsPhotos         Kind = "mars-photos"
	KindNEO                Kind = "neo"
	KindDONKI              Kind = "donki"
	KindDONKINotifications Kind = "donki-notifications"
	KindEPIC               Kind = "epic"
	KindEONET              Kind = "eonet"
	KindImages             Kind = "images"
	KindPower              Kind = "power"
	KindTechport           Kind = "techport"
	KindGIBS               Kind = "gibs"
	KindSBDB               Kind = "sbdb"
	KindOSDR               Kind = "osdr"
	KindEarthdata          Kind = "earthdata"
	KindADS                Kind = "ads"
	KindExoplanets         Kind = "exoplanets"
)

// Kinds lists every data kind in route order.
var Kinds = []Kind{
	KindAPOD, KindMarsPhotos, KindNEO, KindDONKI, KindDONKINotifications,
	KindEPIC, KindEONET, KindImages, KindPower, KindTechport, KindGIBS,
	KindSBDB, KindOSDR, KindEarthdata, KindADS, KindExoplanets,
}

// DefaultTimeout returns the per-call upstream timeout for a kind. The values
// are intentionally uneven: the slower archives (exoplanet TAP queries) get
// more headroom, Mars photo queries less.
func DefaultTimeout(k Kind) time.Duration {
	switch k {
	case KindMarsPhotos:
		return 10 * time.Second
	case KindExoplanets:
		return 20 * time.Second
	default:
		return 15 * time.Second
	}
}

// HasFallback reports whether a kind answers failures with a canned payload
// instead of an error envelope.
func HasFallback(k Kind) bool {
	switch k {
	case KindAPOD, KindNEO, KindEONET, KindTechport, KindExoplanets:
		return true
	}
	return false
}
