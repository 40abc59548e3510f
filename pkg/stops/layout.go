package stops

// StopLayout maps bus stop fields to column indices.
type StopLayout struct {
	ID          int
	Connections int
	Latitude    int
	Longitude   int
}

// DefaultStopLayout returns the layout of
// <id>,<"[id,...]">,<lat>,<lon> rows.
func DefaultStopLayout() StopLayout {
	return StopLayout{
		ID:          0,
		Connections: 1,
		Latitude:    2,
		Longitude:   3,
	}
}

// Parse assembles a BusStop from normalized fields.
// Either every field converts or no record is returned.
func (l StopLayout) Parse(fields []string) (BusStop, error) {
	number, err := idAt(fields, l.ID)
	if err != nil {
		return BusStop{}, err
	}

	conn, err := fieldAt(fields, l.Connections)
	if err != nil {
		return BusStop{}, err
	}

	coords, err := ParseCoordinate(fields, l.Latitude, l.Longitude)
	if err != nil {
		return BusStop{}, err
	}

	return BusStop{
		Number:      number,
		Connections: ParseConnections(conn),
		Coordinates: coords,
	}, nil
}

// Width returns the number of columns a row needs for this layout.
func (l StopLayout) Width() int {
	return maxIndex(l.ID, l.Connections, l.Latitude, l.Longitude) + 1
}

// PointLayout maps point fields to column indices.
type PointLayout struct {
	Latitude  int
	Longitude int
}

// DefaultPointLayout returns the layout of <lat>,<lon> rows.
func DefaultPointLayout() PointLayout {
	return PointLayout{
		Latitude:  0,
		Longitude: 1,
	}
}

// Parse converts normalized fields into a LatLong.
func (l PointLayout) Parse(fields []string) (LatLong, error) {
	return ParseCoordinate(fields, l.Latitude, l.Longitude)
}

// Width returns the number of columns a row needs for this layout.
func (l PointLayout) Width() int {
	return maxIndex(l.Latitude, l.Longitude) + 1
}

func maxIndex(indices ...int) int {
	m := indices[0]
	for _, i := range indices[1:] {
		if i > m {
			m = i
		}
	}
	return m
}
