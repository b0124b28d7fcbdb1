package model

// MarketStats summarises the prices and ages of a collection.
type MarketStats struct {
	Count      int
	Lowest     int64
	Median     int64
	Highest    int64
	Total      int64
	OldestYear int
	NewestYear int
	ByDrive    map[DriveType]int
}
