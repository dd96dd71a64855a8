package utils

import (
	"time"

	"github.com/xosoviet/xoso-backend/internal/models"
)

// Draw schedules by weekday. The northern draw runs one province per day;
// the central and southern draws run several provinces in parallel.
var northSchedule = map[time.Weekday][]string{
	time.Monday:    {"Hà Nội"},
	time.Tuesday:   {"Quảng Ninh"},
	time.Wednesday: {"Bắc Ninh"},
	time.Thursday:  {"Hà Nội"},
	time.Friday:    {"Hải Phòng"},
	time.Saturday:  {"Nam Định"},
	time.Sunday:    {"Thái Bình"},
}

var centralSchedule = map[time.Weekday][]string{
	time.Monday:    {"Thừa Thiên Huế", "Phú Yên"},
	time.Tuesday:   {"Đắk Lắk", "Quảng Nam"},
	time.Wednesday: {"Đà Nẵng", "Khánh Hòa"},
	time.Thursday:  {"Bình Định", "Quảng Trị", "Quảng Bình"},
	time.Friday:    {"Gia Lai", "Ninh Thuận"},
	time.Saturday:  {"Đà Nẵng", "Quảng Ngãi", "Đắk Nông"},
	time.Sunday:    {"Kon Tum", "Khánh Hòa", "Thừa Thiên Huế"},
}

var southSchedule = map[time.Weekday][]string{
	time.Monday:    {"TP.HCM", "Đồng Tháp", "Cà Mau"},
	time.Tuesday:   {"Bến Tre", "Vũng Tàu", "Bạc Liêu"},
	time.Wednesday: {"Đồng Nai", "Cần Thơ", "Sóc Trăng"},
	time.Thursday:  {"Tây Ninh", "An Giang", "Bình Thuận"},
	time.Friday:    {"Vĩnh Long", "Bình Dương", "Trà Vinh"},
	time.Saturday:  {"TP.HCM", "Long An", "Bình Phước", "Hậu Giang"},
	time.Sunday:    {"Tiền Giang", "Kiên Giang", "Đà Lạt"},
}

// GetDrawProvinces returns the provinces drawing for a region on a given
// weekday. Unknown regions have no schedule.
func GetDrawProvinces(region models.Region, day time.Weekday) []string {
	switch region {
	case models.RegionNorth:
		return northSchedule[day]
	case models.RegionCentral:
		return centralSchedule[day]
	case models.RegionSouth:
		return southSchedule[day]
	default:
		return nil
	}
}
