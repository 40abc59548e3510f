package stops

// BusStop is one stop of a transit network.
type BusStop struct {
	// Number identifies the stop.
	Number int
	// Connections lists the identifiers of connected routes, in file order.
	Connections []string
	// Coordinates is where the stop is.
	Coordinates LatLong
}

// ParseBusStop assembles a BusStop from normalized fields laid out as
// DefaultStopLayout.
//
// Example:
//
//	ParseBusStop([]string{"01", "[001,002]", "49.0", "-123.0"})
//	// BusStop{Number: 1, Connections: ["001" "002"], Coordinates: {49 -123}}
func ParseBusStop(fields []string) (BusStop, error) {
	return DefaultStopLayout().Parse(fields)
}

// ParsePoint converts normalized fields laid out as DefaultPointLayout.
func ParsePoint(fields []string) (LatLong, error) {
	return DefaultPointLayout().Parse(fields)
}

// StopsHeader returns the column names of a stops file.
func StopsHeader() []string {
	return []string{"number", "connections", "lat", "long"}
}
