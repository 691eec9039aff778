package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	PatientName string    `json:"patient_name"`
	Services    []string  `json:"services"`
	Total       float64   `json:"total"`
}

type LabCardDTO struct {
	ID          uint      `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	PatientName string    `json:"patient_name"`
	Services    []string  `json:"services"`
}

type LabBoardDTO struct {
	Columns []LabColumnDTO `json:"columns"`
}

type LabColumnDTO struct {
	Status string       `json:"status"`
	Cards  []LabCardDTO `json:"cards"`
}
