package domain

// User and Category are external directory entries; the engine only ever
// resolves them by id.
type User struct {
	ID    int64
	Name  string
	Email string
}

type Category struct {
	ID   int64
	Name string
}

type Location struct {
	ID  int64
	Lat float64
	Lon float64
}

type Coordinates struct {
	Lat float64
	Lon float64
}
