package models

import "time"

type TrafficRequest struct {
	WanIP    string `json:"wan_ip"`
	FromTime string `json:"from_time"`
	ToTime   string `json:"to_time"`
}

type TrafficRow struct {
	TimeHour time.Time `json:"time_hour"`
	WanIP    string    `json:"wan_ip"`
	InAvg    *float64  `json:"in_avg"`
	OutAvg   *float64  `json:"out_avg"`
	InMax    *float64  `json:"in_max"`
	OutMax   *float64  `json:"out_max"`
}

type TrafficPayload struct {
	NoOfRows int          `json:"no_of_rows"`
	Data     []TrafficRow `json:"data"`
}

type TrafficSummaryResponse struct {
	StartingTime string         `json:"starting_time"`
	EndingTime   string         `json:"ending_time"`
	Status       string         `json:"status"`
	Payload      TrafficPayload `json:"payload"`
}

type LocationSummaryRequest struct {
	Location string `json:"location"`
	FromTime string `json:"from_time"`
	ToTime   string `json:"to_time"`
}

// LocationSummary is one aggregated row per link, grouped by
// location/wan ip/bandwidth over the requested window.
type LocationSummary struct {
	Location     string    `json:"location"`
	WanIP        string    `json:"wan_ip"`
	Bandwidth    *string   `json:"bandwidth"`
	DataPoints   int       `json:"data_points"`
	AvgIn        *float64  `json:"avg_in"`
	AvgOut       *float64  `json:"avg_out"`
	PeakIn       *float64  `json:"peak_in"`
	PeakOut      *float64  `json:"peak_out"`
	FirstReading time.Time `json:"first_reading"`
	LastReading  time.Time `json:"last_reading"`
}

type LocationSummaryResponse struct {
	Location     string            `json:"location"`
	FromTime     string            `json:"from_time"`
	ToTime       string            `json:"to_time"`
	TotalRecords int               `json:"total_records"`
	Summary      []LocationSummary `json:"summary"`
}

type ActivityRequest struct {
	WanIP    string `json:"wan_ip"`
	FromTime string `json:"from_time"`
	ToTime   string `json:"to_time"`
}

type ActivityRecord struct {
	UserID          int        `json:"user_id"`
	Username        string     `json:"username"`
	UserDisplayName string     `json:"user_display_name"`
	Location        *string    `json:"location"`
	WanIP           string     `json:"wan_ip"`
	LoginTime       time.Time  `json:"login_time"`
	LogoutTime      *time.Time `json:"logout_time"`
}

type ActivityResponse struct {
	WanIP    string           `json:"wan_ip"`
	FromTime string           `json:"from_time"`
	ToTime   string           `json:"to_time"`
	NoOfRows int              `json:"no_of_rows"`
	History  []ActivityRecord `json:"history"`
}
