package mockapi

import (
	"math/rand"
	"time"

	"github.com/dnlklmn/wpr-presence/internal/fixtures"
	"github.com/dnlklmn/wpr-presence/internal/models"
)

// shiftMenu is the fixed set of (start, end) pairs seeded shifts draw from.
var shiftMenu = [][2]string{
	{"06:00", "14:00"},
	{"08:00", "16:00"},
	{"09:00", "17:00"},
	{"10:00", "18:00"},
	{"12:00", "20:00"},
	{"14:00", "22:00"},
}

// generateHistorical synthesizes one week of plausible shift records ending
// yesterday. Sundays are skipped; each remaining day gets 2-4 markets with
// 3-6 employees apiece. Ids are assigned sequentially from 1.
func generateHistorical(rng *rand.Rand, today time.Time) []models.HoursRecord {
	employees := fixtures.Employees()
	locations := fixtures.Locations()

	var records []models.HoursRecord
	id := 1

	for daysAgo := 7; daysAgo >= 1; daysAgo-- {
		day := today.AddDate(0, 0, -daysAgo)
		if day.Weekday() == time.Sunday {
			continue
		}
		dateStr := day.Format("2006-01-02")

		numMarkets := 2 + rng.Intn(3)
		for _, market := range pickLocations(rng, locations, numMarkets) {
			numEmployees := 3 + rng.Intn(4)
			for _, employee := range pickEmployees(rng, employees, numEmployees) {
				shift := shiftMenu[rng.Intn(len(shiftMenu))]
				signature := scribbleSignature(rng)
				employeeName := fixtures.DisplayName(employee)
				locationName := market.Name

				records = append(records, models.HoursRecord{
					HoursData: models.HoursData{
						EmployeeID: employee.ID,
						LocationID: market.ID,
						Date:       dateStr,
						ShiftStart: shift[0],
						ShiftEnd:   shift[1],
						Signature:  &signature,
					},
					ID:           id,
					EmployeeName: &employeeName,
					LocationName: &locationName,
				})
				id++
			}
		}
	}

	return records
}

func pickLocations(rng *rand.Rand, all []models.Location, n int) []models.Location {
	shuffled := make([]models.Location, len(all))
	copy(shuffled, all)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func pickEmployees(rng *rand.Rand, all []models.Employee, n int) []models.Employee {
	shuffled := make([]models.Employee, len(all))
	copy(shuffled, all)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
