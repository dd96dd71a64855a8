package models

import "strings"

// Region identifies a lottery jurisdiction
type Region string

const (
	RegionNorth   Region = "north"
	RegionCentral Region = "central"
	RegionSouth   Region = "south"

	// RegionAll is a request selector meaning "every region". It is never
	// used as a ResultSet key.
	RegionAll Region = "all"
)

// AllRegions returns the three drawing regions in display order
func AllRegions() []Region {
	return []Region{RegionNorth, RegionCentral, RegionSouth}
}

// NormalizeRegion lowercases and trims a raw region parameter. The result
// is not guaranteed to name a known region; unknown values flow through so
// lookups against the result tables resolve to "absent".
func NormalizeRegion(s string) Region {
	return Region(strings.ToLower(strings.TrimSpace(s)))
}

// ParseRegion normalizes a raw region parameter and reports whether it
// names a known region or the "all" selector
func ParseRegion(s string) (Region, bool) {
	 r := NormalizeRegion(s)
	 switch r {
	 case RegionNorth, RegionCentral, RegionSouth, RegionAll:
		 return r, true
	 default:
		 return r, false
	 }
}

// DisplayName returns the Vietnamese name for a region
func (r Region) DisplayName() string {
	 switch r {
	 case RegionNorth:
		 return "Miền Bắc"
	 case RegionCentral:
		 return "Miền Trung"
	 case RegionSouth:
		 return "Miền Nam"
	 default:
		 return ""
	 }
}
