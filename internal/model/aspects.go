package model

// Aspect score bags are fixed-shape structs rather than open maps so the
// 1-5 bound can be checked field by field.

// EventAspects breaks an event rating into sub-scores.
type EventAspects struct {
	SoundQuality        float64 `json:"sound_quality"`
	VenueExperience     float64 `json:"venue_experience"`
	PerformanceEnergy   float64 `json:"performance_energy"`
	SetlistSatisfaction float64 `json:"setlist_satisfaction"`
	CrowdVibe           float64 `json:"crowd_vibe"`
	ValueForMoney       float64 `json:"value_for_money"`
}

// Scores returns the named sub-scores for bounds checking.
func (a EventAspects) Scores() map[string]float64 {
	return map[string]float64{
		"sound_quality":        a.SoundQuality,
		"venue_experience":     a.VenueExperience,
		"performance_energy":   a.PerformanceEnergy,
		"setlist_satisfaction": a.SetlistSatisfaction,
		"crowd_vibe":           a.CrowdVibe,
		"value_for_money":      a.ValueForMoney,
	}
}

// ArtistAspects breaks an artist rating into sub-scores.
type ArtistAspects struct {
	LivePerformance float64 `json:"live_performance"`
	StagePresence   float64 `json:"stage_presence"`
	SoundQuality    float64 `json:"sound_quality"`
	FanInteraction  float64 `json:"fan_interaction"`
	SetlistVariety  float64 `json:"setlist_variety"`
}

func (a ArtistAspects) Scores() map[string]float64 {
	return map[string]float64{
		"live_performance": a.LivePerformance,
		"stage_presence":   a.StagePresence,
		"sound_quality":    a.SoundQuality,
		"fan_interaction":  a.FanInteraction,
		"setlist_variety":  a.SetlistVariety,
	}
}

// VenueAspects breaks a venue review into sub-scores.
type VenueAspects struct {
	LocationConvenience float64 `json:"location_convenience"`
	SoundSystem         float64 `json:"sound_system"`
	Sightlines          float64 `json:"sightlines"`
	Cleanliness         float64 `json:"cleanliness"`
	StaffFriendliness   float64 `json:"staff_friendliness"`
	DrinkPrices         float64 `json:"drink_prices"`
	Parking             float64 `json:"parking"`
	Bathrooms           float64 `json:"bathrooms"`
}

func (a VenueAspects) Scores() map[string]float64 {
	return map[string]float64{
		"location_convenience": a.LocationConvenience,
		"sound_system":         a.SoundSystem,
		"sightlines":           a.Sightlines,
		"cleanliness":          a.Cleanliness,
		"staff_friendliness":   a.StaffFriendliness,
		"drink_prices":         a.DrinkPrices,
		"parking":              a.Parking,
		"bathrooms":            a.Bathrooms,
	}
}
