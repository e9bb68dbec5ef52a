package models

import "time"

// Schedule is one shift for one worker. For a fixed worker, accepted shifts
// never overlap under half-open [start, end) semantics.
type Schedule struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WorkerID  uint      `json:"worker_id" gorm:"not null;index"`
	Worker    Worker    `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Start     time.Time `json:"start" gorm:"column:start_time;not null"`
	End       time.Time `json:"end" gorm:"column:end_time;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
