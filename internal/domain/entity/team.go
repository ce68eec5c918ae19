package entity

import "time"

// Team is a staff record. A non-empty EndDate marks the employee as resigned.
type Team struct {
	EID           string
	Timestamp     time.Time
	RecBy         string
	DelDate       string
	TeamName      string
	TeamType      string
	UserType      string
	Email         string
	NickName      string
	FullName      string
	LastName      string
	CitizenID     string
	Bank          string
	ACNumber      string
	BirthDay      string
	StartDate     string
	Address       string
	Tel1          string
	Tel2          string
	Job           string
	Level         string
	WorkType      string
	PayType       string
	PayRate       string
	IncentiveRate string
	Pic           string
	CitizenIDPic  string
	HouseRegPic   string
	EndDate       string
}

// Active reports whether the employee has not resigned.
func (t *Team) Active() bool {
	return t.EndDate == ""
}
