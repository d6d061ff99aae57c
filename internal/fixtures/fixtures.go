// Package fixtures holds the static reference data served by the mock
// backend: the Berlin market list, the employee roster and the demo user.
package fixtures

import "github.com/dnlklmn/wpr-presence/internal/models"

// DemoUser is the principal the mock backend authenticates everyone as.
var DemoUser = models.User{ID: "1", Username: "demo", Zugriff: "admin"}

// Locations returns the full static market list.
func Locations() []models.Location {
	return []models.Location{
		{ID: 1, Name: "REWE Alexanderplatz", Address: "Alexanderplatz 5, 10178 Berlin"},
		{ID: 2, Name: "REWE Friedrichstraße", Address: "Friedrichstraße 90, 10117 Berlin"},
		{ID: 3, Name: "REWE Prenzlauer Berg", Address: "Schönhauser Allee 80, 10439 Berlin"},
		{ID: 4, Name: "REWE Kreuzberg", Address: "Oranienstraße 25, 10999 Berlin"},
		{ID: 5, Name: "REWE Charlottenburg", Address: "Wilmersdorfer Str. 46, 10627 Berlin"},
		{ID: 6, Name: "Penny Neukölln", Address: "Karl-Marx-Straße 112, 12043 Berlin"},
		{ID: 7, Name: "Penny Wedding", Address: "Müllerstraße 55, 13349 Berlin"},
		{ID: 8, Name: "Penny Lichtenberg", Address: "Frankfurter Allee 200, 10365 Berlin"},
		{ID: 9, Name: "Penny Spandau", Address: "Carl-Schurz-Straße 18, 13597 Berlin"},
		{ID: 10, Name: "Penny Tempelhof", Address: "Tempelhofer Damm 150, 12099 Berlin"},
	}
}

// Employees returns the full static roster.
func Employees() []models.Employee {
	return []models.Employee{
		{ID: 1, Surname: "Müller", GivenName: "Thomas", Active: true},
		{ID: 2, Surname: "Schmidt", GivenName: "Anna", Active: true},
		{ID: 3, Surname: "Schneider", GivenName: "Michael", Active: true},
		{ID: 4, Surname: "Fischer", GivenName: "Sarah", Active: true},
		{ID: 5, Surname: "Weber", GivenName: "Klaus", Active: true},
		{ID: 6, Surname: "Meyer", GivenName: "Julia", Active: true},
		{ID: 7, Surname: "Wagner", GivenName: "Stefan", Active: true},
		{ID: 8, Surname: "Becker", GivenName: "Laura", Active: true},
		{ID: 9, Surname: "Hoffmann", GivenName: "Martin", Active: true},
		{ID: 10, Surname: "Schulz", GivenName: "Lisa", Active: true},
		{ID: 11, Surname: "Koch", GivenName: "Daniel", Active: true},
		{ID: 12, Surname: "Richter", GivenName: "Christina", Active: true},
		{ID: 13, Surname: "Kowalski", GivenName: "Piotr", Active: true},
		{ID: 14, Surname: "Nowak", GivenName: "Agnieszka", Active: true},
		{ID: 15, Surname: "Wiśniewski", GivenName: "Tomasz", Active: true},
		{ID: 16, Surname: "Wójcik", GivenName: "Katarzyna", Active: true},
		{ID: 17, Surname: "Kowalczyk", GivenName: "Michał", Active: true},
		{ID: 18, Surname: "Kamiński", GivenName: "Anna", Active: true},
		{ID: 19, Surname: "Lewandowski", GivenName: "Paweł", Active: true},
		{ID: 20, Surname: "Zieliński", GivenName: "Magdalena", Active: true},
		{ID: 21, Surname: "Szymański", GivenName: "Jakub", Active: true},
		{ID: 22, Surname: "Woźniak", GivenName: "Monika", Active: true},
		{ID: 23, Surname: "Dąbrowski", GivenName: "Krzysztof", Active: true},
		{ID: 24, Surname: "Kozłowski", GivenName: "Ewa", Active: true},
		{ID: 25, Surname: "Sharma", GivenName: "Rahul", Active: true},
		{ID: 26, Surname: "Patel", GivenName: "Priya", Active: true},
		{ID: 27, Surname: "Singh", GivenName: "Amit", Active: true},
		{ID: 28, Surname: "Kumar", GivenName: "Sunita", Active: true},
		{ID: 29, Surname: "Gupta", GivenName: "Vikram", Active: true},
		{ID: 30, Surname: "Reddy", GivenName: "Anjali", Active: true},
		{ID: 31, Surname: "Rao", GivenName: "Sanjay", Active: true},
		{ID: 32, Surname: "Verma", GivenName: "Deepa", Active: true},
		{ID: 33, Surname: "Joshi", GivenName: "Arjun", Active: true},
		{ID: 34, Surname: "Nair", GivenName: "Kavitha", Active: true},
		{ID: 35, Surname: "Mehta", GivenName: "Rohan", Active: true},
	}
}

// DisplayName formats an employee the way records denormalize it.
func DisplayName(e models.Employee) string {
	return e.GivenName + " " + e.Surname
}
