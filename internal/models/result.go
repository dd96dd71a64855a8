package models

// Prize is a single prize tier within a draw, in draw order. Numbers are
// fixed-width numeric strings; leading zeros are significant.
type Prize struct {
	Name    string   `bson:"name" json:"name"`
	Numbers []string `bson:"numbers" json:"numbers"`
}

// RegionResult holds one region's results for a single draw date
type RegionResult struct {
	Name   string  `bson:"name" json:"name"`
	Date   string  `bson:"date" json:"date"` // YYYY-MM-DD
	Prizes []Prize `bson:"prizes" json:"prizes"`
}

// ResultSet maps region codes to their results. A single-region request
// yields a singleton mapping; an "all" request yields all three regions.
type ResultSet map[Region]*RegionResult
