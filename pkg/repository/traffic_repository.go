package repository

import (
	"database/sql"
	"fmt"

	"trafficportal/pkg/models"
)

type TrafficRepository interface {
	// TrafficByRange returns the hourly rows for one wan ip inside the
	// window (inclusive on both ends) plus the matching row count.
	TrafficByRange(wanIP, fromTime, toTime string) ([]models.TrafficRow, int, error)
	// LocationSummary aggregates per link over the window; location is
	// an optional filter.
	LocationSummary(location, fromTime, toTime string) ([]models.LocationSummary, error)
	// UserActivityByWanIP joins sessions against the link master to
	// report who was logged in behind a wan ip during the window.
	UserActivityByWanIP(wanIP, fromTime, toTime string) ([]models.ActivityRecord, error)
}

type trafficRepository struct {
	db *sql.DB
}

func NewTrafficRepository(db *sql.DB) TrafficRepository {
	return &trafficRepository{db: db}
}

func (r *trafficRepository) TrafficByRange(wanIP, fromTime, toTime string) ([]models.TrafficRow, int, error) {
	rows, err := r.db.Query(
		`SELECT time_hour, wan_ip, in_avg, out_avg, in_max, out_max
		 FROM traffic_hourly_copy
		 WHERE wan_ip = $1 AND time_hour BETWEEN $2 AND $3
		 ORDER BY time_hour ASC`,
		wanIP, fromTime, toTime,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	data := []models.TrafficRow{}
	for rows.Next() {
		var t models.TrafficRow
		if err := rows.Scan(&t.TimeHour, &t.WanIP, &t.InAvg, &t.OutAvg, &t.InMax, &t.OutMax); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		data = append(data, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	return data, len(data), nil
}

func (r *trafficRepository) LocationSummary(location, fromTime, toTime string) ([]models.LocationSummary, error) {
	query := `
		SELECT
			b.node AS location,
			b.wanip AS wan_ip,
			b.bandwidth,
			COUNT(*) AS data_points,
			ROUND(AVG(t.in_avg)::numeric, 2) AS avg_in,
			ROUND(AVG(t.out_avg)::numeric, 2) AS avg_out,
			ROUND(MAX(t.in_max)::numeric, 2) AS peak_in,
			ROUND(MAX(t.out_max)::numeric, 2) AS peak_out,
			MIN(t.time_hour) AS first_reading,
			MAX(t.time_hour) AS last_reading
		FROM bmap_link_master b
		INNER JOIN traffic_hourly_copy t ON t.wan_ip = b.wanip
		WHERE t.time_hour BETWEEN $1 AND $2`
	args := []interface{}{fromTime, toTime}

	if location != "" {
		query += ` AND b.node = $3`
		args = append(args, location)
	}
	query += `
		GROUP BY b.node, b.wanip, b.bandwidth
		ORDER BY b.node ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	summary := []models.LocationSummary{}
	for rows.Next() {
		var s models.LocationSummary
		if err := rows.Scan(&s.Location, &s.WanIP, &s.Bandwidth, &s.DataPoints,
			&s.AvgIn, &s.AvgOut, &s.PeakIn, &s.PeakOut,
			&s.FirstReading, &s.LastReading); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		summary = append(summary, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return summary, nil
}

func (r *trafficRepository) UserActivityByWanIP(wanIP, fromTime, toTime string) ([]models.ActivityRecord, error) {
	rows, err := r.db.Query(
		`SELECT u.id, u.username, u.user_display_name, blm.node, s.wan_ip, s.login_time, s.logout_time
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 LEFT JOIN bmap_link_master blm ON blm.wanip = s.wan_ip
		 WHERE s.wan_ip = $1 AND s.login_time BETWEEN $2 AND $3
		 ORDER BY s.login_time DESC`,
		wanIP, fromTime, toTime,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	history := []models.ActivityRecord{}
	for rows.Next() {
		var a models.ActivityRecord
		if err := rows.Scan(&a.UserID, &a.Username, &a.UserDisplayName,
			&a.Location, &a.WanIP, &a.LoginTime, &a.LogoutTime); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		history = append(history, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return history, nil
}
