package models

// User identifies the authenticated principal. It exists only for the
// lifetime of a session and is cleared on logout.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Zugriff  string `json:"zugriff"`
}

// Employee is static reference data; the client never mutates it.
// JSON field names follow the backend's German column names.
type Employee struct {
	ID        int    `json:"ma_id"`
	Surname   string `json:"name"`
	GivenName string `json:"vorname"`
	Active    bool   `json:"active"`
}

// Location is a store/market the hours are recorded against.
type Location struct {
	ID      int    `json:"f_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// HoursData is a not-yet-persisted shift submission. Date is an ISO
// calendar date (YYYY-MM-DD), shift times are HH:MM, and Signature is a
// data-URI image if one was captured.
type HoursData struct {
	EmployeeID int     `json:"ma_id"`
	LocationID int     `json:"f_id"`
	Date       string  `json:"datum"`
	ShiftStart string  `json:"schicht_start"`
	ShiftEnd   string  `json:"schicht_ende"`
	Signature  *string `json:"signature,omitempty"`
}

// HoursRecord is a persisted submission. The display names are snapshots
// taken at submission time and are never recomputed from reference data.
type HoursRecord struct {
	HoursData
	ID           int     `json:"id"`
	EmployeeName *string `json:"mitarbeiter_name,omitempty"`
	LocationName *string `json:"filiale_name,omitempty"`
}
