package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleNormal  Role = "normal"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a client-supplied string onto the role enum.
// Unknown values are rejected instead of being written through.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleNormal, RoleTeacher, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      Role      `gorm:"not null;default:normal" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestStatus tracks the lifecycle of a teacher application.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// TeacherRequest is a user's application to become a teacher.
// At most one request may exist per email.
type TeacherRequest struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Name       string        `gorm:"not null" json:"name"`
	Email      string        `gorm:"uniqueIndex;not null" json:"email"`
	Image      string        `json:"image"`
	Title      string        `json:"title"`
	Experience string        `json:"experience"`
	Category   string        `json:"category"`
	Status     RequestStatus `gorm:"not null;default:pending" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (r *TeacherRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

func (r *TeacherRequest) IsRejected() bool {
	return r.Status == RequestStatusRejected
}

type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusRejected ClassStatus = "rejected"
)

// Class is a course listed on the marketplace. Email is the owning
// teacher; TotalEnrollments is only ever moved by recorded payments.
type Class struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	Title            string      `gorm:"not null" json:"title"`
	Name             string      `gorm:"not null" json:"name"`
	Email            string      `gorm:"index;not null" json:"email"`
	Price            int64       `gorm:"not null" json:"price"`
	Description      string      `json:"description"`
	Image            string      `json:"image"`
	Status           ClassStatus `gorm:"not null;default:pending" json:"status"`
	TotalEnrollments int64       `gorm:"not null;default:0" json:"total_enrollments"`
	CreatedAt        time.Time   `json:"created_at"`
}

type Assignment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ClassID         uint      `gorm:"index;not null" json:"class_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	SubmissionCount int64     `gorm:"not null;default:0" json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// Payment is an immutable enrollment record. OpKey is a unique
// operation key so a replayed request cannot double-count.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OpKey     string    `gorm:"uniqueIndex;not null" json:"op_key"`
	Email     string    `gorm:"index;not null" json:"email"`
	ClassID   uint      `gorm:"index;not null" json:"class_id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Feedback is append-only; Body keeps whatever shape the client sent.
type Feedback struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `json:"email"`
	Body      datatypes.JSON `json:"body"`
	CreatedAt time.Time      `json:"created_at"`
}
