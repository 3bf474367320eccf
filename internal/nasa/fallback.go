package nasa

import (
	"encoding/json"
	"time"
)

// Canned payloads served when live resolution fails. Each one matches the
// shape of a real successful response for its kind, so consumers never need
// to special-case degraded data. They are static templates; only the dates
// shown below are substituted at request time.

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		// All inputs are literals below; a marshal failure is a programming error.
		panic(err)
	}
	return b
}

// APODFallback returns a sample astronomy picture dated today.
func APODFallback(today string) []byte {
	return mustJSON(map[string]any{
		"date":            today,
		"explanation":     "This is a sample astronomy picture. The actual NASA APOD service may be temporarily unavailable. This demonstrates the application's fallback mechanism to ensure users always have content to explore.",
		"hdurl":           "https://apod.nasa.gov/apod/image/2310/M33_HubbleSubaru_3000.jpg",
		"media_type":      "image",
		"service_version": "v1",
		"title":           "Sample: The Triangulum Galaxy",
		"url":             "https://apod.nasa.gov/apod/image/2310/M33_HubbleSubaru_960.jpg",
	})
}

// NEOFallback returns a single synthetic near-Earth object keyed under the
// resolved start date of the failed feed query.
func NEOFallback(startDate string) []byte {
	return mustJSON(map[string]any{
		"links":         map[string]any{"self": "mock-data"},
		"element_count": 2,
		"near_earth_objects": map[string]any{
			startDate: []any{
				map[string]any{
					"id":                   "54016849",
					"name":                 "(2020 SO)",
					"absolute_magnitude_h": 28.1,
					"estimated_diameter": map[string]any{
						"kilometers": map[string]any{"estimated_diameter_min": 0.004, "estimated_diameter_max": 0.009},
						"meters":     map[string]any{"estimated_diameter_min": 4.2, "estimated_diameter_max": 9.4},
					},
					"is_potentially_hazardous_asteroid": false,
					"close_approach_data": []any{
						map[string]any{
							"close_approach_date": startDate,
							"relative_velocity":   map[string]any{"kilometers_per_hour": "27000"},
							"miss_distance":       map[string]any{"kilometers": "450000"},
						},
					},
				},
			},
		},
	})
}

// EONETFallback returns two synthetic natural events stamped with now.
func EONETFallback(now time.Time) []byte {
	stamp := now.UTC().Format(time.RFC3339)
	return mustJSON(map[string]any{
		"title":       "EONET Events",
		"description": "Natural events from EONET",
		"events": []any{
			map[string]any{
				"id":          "EONET_6195",
				"title":       "Wildfire - California, United States",
				"description": "Sample wildfire event for demonstration",
				"categories":  []any{map[string]any{"id": "wildfires", "title": "Wildfires"}},
				"sources":     []any{map[string]any{"id": "InciWeb", "url": "https://inciweb.nwcg.gov/"}},
				"geometry": []any{map[string]any{
					"magnitudeValue": nil,
					"magnitudeUnit":  nil,
					"date":           stamp,
					"type":           "Point",
					"coordinates":    []any{-120.5, 37.5},
				}},
			},
			map[string]any{
				"id":          "EONET_6196",
				"title":       "Volcano - Mount Etna, Italy",
				"description": "Sample volcanic activity",
				"categories":  []any{map[string]any{"id": "volcanoes", "title": "Volcanoes"}},
				"sources":     []any{map[string]any{"id": "SIVolcano", "url": "https://volcano.si.edu/"}},
				"geometry": []any{map[string]any{
					"magnitudeValue": 3.2,
					"magnitudeUnit":  "VEI",
					"date":           stamp,
					"type":           "Point",
					"coordinates":    []any{14.999, 37.748},
				}},
			},
		},
	})
}

var techportPropulsion = map[string]any{
	"projectId":   17792,
	"title":       "Advanced Propulsion Systems",
	"description": "Development of next-generation propulsion technologies for deep space missions.",
	"status":      "Active",
	"startDate":   "2023-01-01",
	"benefits":    "Enables faster and more efficient space travel for future missions to Mars and beyond.",
}

var techportSampleReturn = map[string]any{
	"projectId":   17793,
	"title":       "Mars Sample Return Mission",
	"description": "Technology development for returning samples from Mars to Earth.",
	"status":      "Active",
	"startDate":   "2022-06-01",
	"benefits":    "Will provide unprecedented scientific insights into Mars geology and potential for past life.",
}

// TechportFallback returns two synthetic projects, used when the upstream
// call fails outright.
func TechportFallback() []byte {
	return mustJSON(map[string]any{
		"projects": []any{techportPropulsion, techportSampleReturn},
	})
}

// TechportEmptyFallback returns a single synthetic project, used when the
// upstream answered but with neither a project list nor a single project.
func TechportEmptyFallback() []byte {
	return mustJSON(map[string]any{
		"projects": []any{techportPropulsion},
	})
}

// ExoplanetsFallback returns three well-known confirmed exoplanets.
func ExoplanetsFallback() []byte {
	return mustJSON([]any{
		map[string]any{
			"pl_name":         "Kepler-452 b",
			"hostname":        "Kepler-452",
			"pl_orbper":       384.843,
			"pl_rade":         1.63,
			"disc_year":       2015,
			"discoverymethod": "Transit",
		},
		map[string]any{
			"pl_name":         "TRAPPIST-1 e",
			"hostname":        "TRAPPIST-1",
			"pl_orbper":       6.099615,
			"pl_rade":         0.92,
			"disc_year":       2016,
			"discoverymethod": "Transit",
		},
		map[string]any{
			"pl_name":         "Proxima Centauri b",
			"hostname":        "Proxima Centauri",
			"pl_orbper":       11.186,
			"pl_rade":         1.17,
			"disc_year":       2016,
			"discoverymethod": "Radial Velocity",
		},
	})
}

// ADSDemo returns the annotated demo payload for the astrophysics data
// system. ADS needs its own token which this deployment never has, so the
// endpoint is permanently degraded and labeled as such.
func ADSDemo(query string) []byte {
	return mustJSON(map[string]any{
		"message": "ADS API requires separate authentication",
		"query":   query,
		"mockResults": []any{
			map[string]any{
				"title":    "Black Hole Physics and Astrophysics",
				"author":   "NASA Astrophysics Division",
				"year":     "2024",
				"abstract": "Comprehensive study of black hole phenomena...",
			},
		},
	})
}
