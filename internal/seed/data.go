package seed

import (
	"time"

	"github.com/4k6ag/radio-station/backend/internal/models"
)

func strptr(s string) *string { return &s }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var stationInfo = models.StationInfoCreate{
	Operator: "John Doe",
	Location: "Baku, Azerbaijan",
	Grid:     "LN40AA",
	License:  "Extra Class",
	Status:   models.StatusOnline,
}

var equipment = []models.EquipmentCreate{
	{Type: models.EquipmentTransceiver, Name: "Yaesu FT-991A", Specs: "HF/VHF/UHF All Mode Transceiver", Power: strptr("100W"), Bands: strptr("160-10m, 2m, 70cm")},
	{Type: models.EquipmentAntenna, Name: "Hexbeam Antenna", Specs: "6-Band HF Beam Antenna", Gain: strptr("6-8 dBi"), Bands: strptr("20-10m")},
	{Type: models.EquipmentAmplifier, Name: "ACOM 1000", Specs: "HF Linear Amplifier", Power: strptr("1000W"), Bands: strptr("160-10m")},
}

var qslCards = []models.QSLCardCreate{
	{Image: "https://via.placeholder.com/400x250/4a90e2/ffffff?text=4K6AG+QSL", Year: "2024", Design: "Baku Flame Towers"},
	{Image: "https://via.placeholder.com/400x250/50c878/ffffff?text=4K6AG+QSL+2023", Year: "2023", Design: "Azerbaijan Flag"},
}

var achievements = []models.AchievementCreate{
	{Title: "DXCC Honor Roll", Description: "Worked and confirmed 340+ countries", Year: "2024"},
	{Title: "WAS (Worked All States)", Description: "Confirmed all 50 US States", Year: "2023"},
	{Title: "WAE (Worked All Europe)", Description: "Worked all European countries", Year: "2023"},
}

var news = []models.NewsCreate{
	{
		Title:    "New Equipment Installation",
		Content:  "Successfully installed new Hexbeam antenna system for improved DX performance.",
		Date:     day(2024, time.January, 15),
		Category: models.NewsEquipment,
	},
	{
		Title:    "Contest Results",
		Content:  "Achieved top 10 position in CQ WW DX Contest 2024 from Azerbaijan.",
		Date:     day(2024, time.January, 10),
		Category: models.NewsContests,
	},
}

var gallery = []models.GalleryCreate{
	{Image: "https://via.placeholder.com/600x400/ff6b6b/ffffff?text=Station+Shack", Title: "Main Operating Position", Description: "4K6AG main station setup"},
	{Image: "https://via.placeholder.com/600x400/4ecdc4/ffffff?text=Antenna+Farm", Title: "Antenna Farm", Description: "HF and VHF antenna systems"},
	{Image: "https://via.placeholder.com/600x400/45b7d1/ffffff?text=QSL+Collection", Title: "QSL Card Collection", Description: "Part of our QSL card collection"},
}

type guestbookSeed struct {
	entry models.GuestbookCreate
	date  time.Time
}

var guestbook = []guestbookSeed{
	{models.GuestbookCreate{Name: "VK3XYZ", Callsign: strptr("VK3XYZ"), Message: "Great signal from Azerbaijan! 73s from Australia.", Country: strptr("Australia")}, *day(2024, time.January, 20)},
	{models.GuestbookCreate{Name: "JA1ABC", Callsign: strptr("JA1ABC"), Message: "Thanks for the nice QSO on 20m. Hope to work you again soon!", Country: strptr("Japan")}, *day(2024, time.January, 18)},
}
