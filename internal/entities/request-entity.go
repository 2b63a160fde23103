package entities

import "time"

// Request — заявка сервисного центра. Номер заявки (request_number)
// детерминированно выводится из внешнего requestID и уникален.
// CompletedDate заполняется только для статуса "завершена".
type Request struct {
	ID                 int64      `json:"id" db:"id"`
	RequestNumber      string     `json:"request_number" db:"request_number"`
	CreatedDate        time.Time  `json:"created_date" db:"created_date"`
	EquipmentType      string     `json:"equipment_type" db:"equipment_type"`
	DeviceModel        string     `json:"device_model" db:"device_model"`
	FaultType          string     `json:"fault_type" db:"fault_type"`
	ProblemDescription string     `json:"problem_description" db:"problem_description"`
	CustomerName       string     `json:"customer_name" db:"customer_name"`
	CustomerPhone      string     `json:"customer_phone" db:"customer_phone"`
	Status             string     `json:"status" db:"status"`
	AssignedTo         *int64     `json:"assigned_to" db:"assigned_to"`
	EstimatedCost      float64    `json:"estimated_cost" db:"estimated_cost"`
	ActualCost         *float64   `json:"actual_cost" db:"actual_cost"`
	Deadline           time.Time  `json:"deadline" db:"deadline"`
	CompletedDate      *time.Time `json:"completed_date" db:"completed_date"`
}
