package dto

import "time"

// SaveTeamRequest is one staff-record form submission.
type SaveTeamRequest struct {
	EID           string     `json:"eid"`
	TeamName      string     `json:"team_name"`
	TeamType      string     `json:"team_type"`
	UserType      string     `json:"user_type"`
	Email         string     `json:"email"`
	NickName      string     `json:"nick_name" validate:"required"`
	FullName      string     `json:"full_name" validate:"required"`
	LastName      string     `json:"last_name"`
	CitizenID     string     `json:"citizen_id"`
	Bank          string     `json:"bank"`
	ACNumber      string     `json:"ac_number"`
	BirthDay      string     `json:"birth_day"`
	StartDate     string     `json:"start_date"`
	Address       string     `json:"address"`
	Tel1          string     `json:"tel1"`
	Tel2          string     `json:"tel2"`
	Job           string     `json:"job"`
	Level         string     `json:"level"`
	WorkType      string     `json:"work_type"`
	PayType       string     `json:"pay_type"`
	PayRate       string     `json:"pay_rate"`
	IncentiveRate string     `json:"incentive_rate"`
	Pic           string     `json:"pic"`
	CitizenIDPic  string     `json:"citizen_id_pic"`
	HouseRegPic   string     `json:"house_reg_pic"`
	EndDate       string     `json:"end_date"`
	Baseline      *time.Time `json:"baseline,omitempty"`
}

// TeamResponse is one staff record. Active derives from EndDate.
type TeamResponse struct {
	EID           string    `json:"eid"`
	Timestamp     time.Time `json:"timestamp"`
	RecBy         string    `json:"rec_by"`
	TeamName      string    `json:"team_name"`
	TeamType      string    `json:"team_type"`
	UserType      string    `json:"user_type"`
	Email         string    `json:"email"`
	NickName      string    `json:"nick_name"`
	FullName      string    `json:"full_name"`
	LastName      string    `json:"last_name"`
	CitizenID     string    `json:"citizen_id"`
	Bank          string    `json:"bank"`
	ACNumber      string    `json:"ac_number"`
	BirthDay      string    `json:"birth_day"`
	StartDate     string    `json:"start_date"`
	Address       string    `json:"address"`
	Tel1          string    `json:"tel1"`
	Tel2          string    `json:"tel2"`
	Job           string    `json:"job"`
	Level         string    `json:"level"`
	WorkType      string    `json:"work_type"`
	PayType       string    `json:"pay_type"`
	PayRate       string    `json:"pay_rate"`
	IncentiveRate string    `json:"incentive_rate"`
	Pic           string    `json:"pic"`
	CitizenIDPic  string    `json:"citizen_id_pic"`
	HouseRegPic   string    `json:"house_reg_pic"`
	EndDate       string    `json:"end_date"`
	Active        bool      `json:"active"`
}
