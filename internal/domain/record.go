package domain

// WorkRecord is one validated time-tracking line.
type WorkRecord struct {
	Business    string
	Date        string // YYYYMMDD
	Start       string // HHMM
	End         string // HHMM
	Description string
	Hours       float64
}
