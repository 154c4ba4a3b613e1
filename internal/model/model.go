package model

import (
	"time"

	"gorm.io/datatypes"
)

// DatabaseModels lists the structs that map to tables, in migration order.
var DatabaseModels = []interface{}{
	&UnitTemplate{},
	&ParseRun{},
}

// UnitTemplate is a stored catalog entry. Key is the lowercased
// "chassis model" name used for lookups.
type UnitTemplate struct {
	ID         uint           `json:"id" gorm:"primarykey;autoIncrement"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Key        string         `json:"key" gorm:"column:lookup_key;size:255;uniqueIndex:idx_unit_template_key"`
	Name       string         `json:"name" gorm:"size:255"`
	Chassis    string         `json:"chassis" gorm:"size:127;index:idx_unit_template_chassis"`
	Model      string         `json:"model" gorm:"size:127"`
	Kind       string         `json:"kind" gorm:"size:31"`
	Definition datatypes.JSON `json:"definition"`
}

func (*UnitTemplate) TableName() string {
	return "unit_templates"
}

// ParseRun records one parsed unit list.
type ParseRun struct {
	ID          uint      `json:"id" gorm:"primarykey;autoIncrement"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index:idx_parse_run_created_at"`
	Source      string    `json:"source" gorm:"size:255;index:idx_parse_run_source"`
	FileVersion string    `json:"fileVersion" gorm:"size:31"`
	Entities    int       `json:"entities"`
	Survivors   int       `json:"survivors"`
	Salvage     int       `json:"salvage"`
	Devastated  int       `json:"devastated"`
	Pilots      int       `json:"pilots"`
	Kills       int       `json:"kills"`
	Warnings    int       `json:"warnings"`
	DurationMs  float32   `json:"durationMs"`
	WarningLog  string    `json:"warningLog" gorm:"type:text"`
}

func (*ParseRun) TableName() string {
	return "parse_runs"
}
