package nasa

import "astrolink/internal/config"

// Endpoints holds the base URLs of every upstream provider. NASA's open data
// is spread across nine distinct hosts; only api.nasa.gov takes the API key.
type Endpoints struct {
	APIBase       string // api.nasa.gov (APOD, Mars photos, NEO, DONKI, EPIC, TechPort)
	EONETBase     string // natural event tracker
	ImagesBase    string // image and video library
	PowerBase     string // climate / solar energy
	SSDBase       string // JPL small-body database
	OSDRBase      string // open science data repository
	CMRBase       string // Earthdata common metadata repository
	ExoplanetBase string // exoplanet archive TAP service
	GIBSBase      string // global imagery browse services
}

// DefaultEndpoints returns the production NASA hosts.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		APIBase:       "https://api.nasa.gov",
		EONETBase:     "https://eonet.gsfc.nasa.gov",
		ImagesBase:    "https://images-api.nasa.gov",
		PowerBase:     "https://power.larc.nasa.gov",
		SSDBase:       "https://ssd-api.jpl.nasa.gov",
		OSDRBase:      "https://osdr.nasa.gov",
		CMRBase:       "https://cmr.earthdata.nasa.gov",
		ExoplanetBase: "https://exoplanetarchive.ipac.caltech.edu",
		GIBSBase:      "https://gibs.earthdata.nasa.gov",
	}
}

// ApplyOverrides returns a copy of e with any non-empty override applied.
func (e Endpoints) ApplyOverrides(o config.EndpointOverrides) Endpoints {
	if o.APIBase != "" {
		e.APIBase = o.APIBase
	}
	if o.EONETBase != "" {
		e.EONETBase = o.EONETBase
	}
	if o.ImagesBase != "" {
		e.ImagesBase = o.ImagesBase
	}
	if o.PowerBase != "" {
		e.PowerBase = o.PowerBase
	}
	if o.SSDBase != "" {
		e.SSDBase = o.SSDBase
	}
	if o.OSDRBase != "" {
		e.OSDRBase = o.OSDRBase
	}
	if o.CMRBase != "" {
		e.CMRBase = o.CMRBase
	}
	if o.ExoplanetBase != "" {
		e.ExoplanetBase = o.ExoplanetBase
	}
	if o.GIBSBase != "" {
		e.GIBSBase = o.GIBSBase
	}
	return e
}
