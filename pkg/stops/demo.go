package stops

// DemoDocument returns the sample points document:
//
//	lat,lon
//	49.0,-123.0
//	49.1,-123.1
//	49.2,-123.2
func DemoDocument() *Document {
	return NewDocument(
		[]string{"lat", "lon"},
		[]LatLong{
			{Latitude: 49.0, Longitude: -123.0},
			{Latitude: 49.1, Longitude: -123.1},
			{Latitude: 49.2, Longitude: -123.2},
		},
	)
}

// DemoStops returns a few sample stops around UBC, Vancouver.
func DemoStops() []BusStop {
	return []BusStop{
		{
			Number:      51916,
			Connections: []string{"044", "084"},
			Coordinates: LatLong{Latitude: 49.273342, Longitude: -123.239004},
		},
		{
			Number:      61935,
			Connections: []string{"025", "033", "R4"},
			Coordinates: LatLong{Latitude: 49.265712, Longitude: -123.247651},
		},
		{
			Number:      50913,
			Connections: []string{"099"},
			Coordinates: LatLong{Latitude: 49.264317, Longitude: -123.185083},
		},
	}
}
