package eventlog

import (
	"time"

	"gorm.io/gorm"
)

// Repository handles decoded-event database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository bound to a gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create adds a new decoded-event record.
func (r *Repository) Create(ev *DecodedEvent) error {
	return r.db.Create(ev).Error
}

// GetRecent retrieves the most recent N decoded events.
func (r *Repository) GetRecent(limit int) ([]DecodedEvent, error) {
	var events []DecodedEvent
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&events).Error
	return events, err
}

// GetRecentPaginated retrieves decoded events with pagination.
func (r *Repository) GetRecentPaginated(page, perPage int) ([]DecodedEvent, int64, error) {
	var events []DecodedEvent
	var total int64

	if err := r.db.Model(&DecodedEvent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	err := r.db.Order("timestamp DESC").
		Offset(offset).
		Limit(perPage).
		Find(&events).Error

	return events, total, err
}

// GetByNAC retrieves decoded events carrying a specific network access code.
func (r *Repository) GetByNAC(nac uint16, limit int) ([]DecodedEvent, error) {
	var events []DecodedEvent
	err := r.db.Where("nac = ?", nac).
		Order("timestamp DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// GetByTalkGroup retrieves decoded events for a specific talkgroup.
func (r *Repository) GetByTalkGroup(tg uint16, limit int) ([]DecodedEvent, error) {
	var events []DecodedEvent
	err := r.db.Where("talk_group = ?", tg).
		Order("timestamp DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// GetByTimeRange retrieves decoded events within a time range.
func (r *Repository) GetByTimeRange(start, end time.Time, limit int) ([]DecodedEvent, error) {
	var events []DecodedEvent
	err := r.db.Where("timestamp BETWEEN ? AND ?", start, end).
		Order("timestamp DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// DeleteOlderThan deletes decoded events older than the specified time.
func (r *Repository) DeleteOlderThan(before time.Time) (int64, error) {
	result := r.db.Where("timestamp < ?", before).Delete(&DecodedEvent{})
	return result.RowsAffected, result.Error
}

// GetActiveTalkGroups retrieves talkgroups that produced an event within
// the last N seconds.
func (r *Repository) GetActiveTalkGroups(withinSeconds int) ([]uint16, error) {
	var talkGroups []uint16
	cutoff := time.Now().Add(-time.Duration(withinSeconds) * time.Second)

	err := r.db.Model(&DecodedEvent{}).
		Where("timestamp > ? AND talk_group > 0", cutoff).
		Distinct("talk_group").
		Pluck("talk_group", &talkGroups).Error

	return talkGroups, err
}
