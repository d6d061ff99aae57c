package models

// Response envelopes matching the backend wire contract. The mock and the
// real service return identical shapes so call sites cannot tell them apart.

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Expires int64  `json:"expires"` // Unix seconds
	User    User   `json:"user"`
}

type EmployeesResponse struct {
	Success   bool       `json:"success"`
	Count     int        `json:"count"`
	Employees []Employee `json:"mitarbeiter"`
}

type LocationsResponse struct {
	Success   bool       `json:"success"`
	Count     int        `json:"count"`
	Locations []Location `json:"filialen"`
}

type SubmitResponse struct {
	Success bool `json:"success"`
}

type HistoryResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Records []HoursRecord `json:"records"`
}
