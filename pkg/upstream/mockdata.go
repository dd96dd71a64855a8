package upstream

import "github.com/xosoviet/xoso-backend/internal/models"

// Fixed demo tables served in mock mode and as the fallback when the live
// feed is unreachable. Prize tiers are listed in draw order; the northern
// draw uses its own tier structure, the central and southern draws share
// theirs. Numbers keep their leading zeros.
var mockTables = map[models.Region]models.RegionResult{
	models.RegionNorth: {
		Name: "Miền Bắc",
		Prizes: []models.Prize{
			{Name: "Đặc biệt", Numbers: []string{"92648"}},
			{Name: "Giải nhất", Numbers: []string{"03758"}},
			{Name: "Giải nhì", Numbers: []string{"57910", "82346"}},
			{Name: "Giải ba", Numbers: []string{"04915", "16732", "45089", "61254", "77823", "90467"}},
			{Name: "Giải tư", Numbers: []string{"1528", "3094", "6871", "9406"}},
			{Name: "Giải năm", Numbers: []string{"0348", "2179", "4652", "5017", "7840", "9265"}},
			{Name: "Giải sáu", Numbers: []string{"072", "418", "593"}},
			{Name: "Giải bảy", Numbers: []string{"04", "36", "58", "91"}},
		},
	},
	models.RegionCentral: {
		Name: "Miền Trung",
		Prizes: []models.Prize{
			{Name: "Giải tám", Numbers: []string{"27"}},
			{Name: "Giải bảy", Numbers: []string{"304"}},
			{Name: "Giải sáu", Numbers: []string{"0853", "4217", "9640"}},
			{Name: "Giải năm", Numbers: []string{"6179"}},
			{Name: "Giải tư", Numbers: []string{"05238", "19471", "33064", "48927", "60315", "74582", "88146"}},
			{Name: "Giải ba", Numbers: []string{"21790", "96403"}},
			{Name: "Giải nhì", Numbers: []string{"53871"}},
			{Name: "Giải nhất", Numbers: []string{"08254"}},
			{Name: "Đặc biệt", Numbers: []string{"471936"}},
		},
	},
	models.RegionSouth: {
		Name: "Miền Nam",
		Prizes: []models.Prize{
			{Name: "Giải tám", Numbers: []string{"62"}},
			{Name: "Giải bảy", Numbers: []string{"091"}},
			{Name: "Giải sáu", Numbers: []string{"1746", "5320", "8915"}},
			{Name: "Giải năm", Numbers: []string{"2407"}},
			{Name: "Giải tư", Numbers: []string{"01593", "26847", "38120", "49765", "57302", "70418", "94236"}},
			{Name: "Giải ba", Numbers: []string{"13580", "86724"}},
			{Name: "Giải nhì", Numbers: []string{"40916"}},
			{Name: "Giải nhất", Numbers: []string{"72503"}},
			{Name: "Đặc biệt", Numbers: []string{"358142"}},
		},
	},
}

// MockResults returns the fixed demo results for a draw date. Region "all"
// yields every region; a single region yields a singleton mapping. An
// unknown region has no entry in the tables, so its mapping comes back
// empty.
func MockResults(date string, region models.Region) models.ResultSet {
	if region == models.RegionAll {
		set := make(models.ResultSet, len(mockTables))
		for _, r := range models.AllRegions() {
			set[r] = mockRegion(r, date)
		}
		return set
	}
	set := make(models.ResultSet, 1)
	if result := mockRegion(region, date); result != nil {
		set[region] = result
	}
	return set
}

func mockRegion(region models.Region, date string) *models.RegionResult {
	table, ok := mockTables[region]
	if !ok {
		return nil
	}
	// Shallow copy; the prize tables are shared and read-only.
	result := table
	result.Date = date
	return &result
}
