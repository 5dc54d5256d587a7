package model

import (
	"github.com/shopspring/decimal"
)

const RoleStudent = "Student"

type FineSettings struct {
	StudentDailyFine  decimal.Decimal `json:"student_daily_fine" db:"student_daily_fine" validate:"required"`
	FacultyDailyFine  decimal.Decimal `json:"faculty_daily_fine" db:"faculty_daily_fine" validate:"required"`
	StudentBorrowDays int             `json:"student_borrow_days" db:"student_borrow_days" validate:"min=1"`
	FacultyBorrowDays int             `json:"faculty_borrow_days" db:"faculty_borrow_days" validate:"min=1"`
}

func DefaultFineSettings() FineSettings {
	return FineSettings{
		StudentDailyFine:  decimal.NewFromInt(5),
		FacultyDailyFine:  decimal.NewFromInt(5),
		StudentBorrowDays: 3,
		FacultyBorrowDays: 7,
	}
}

// IsStudent treats a missing role as student.
func IsStudent(role *string) bool {
	return role == nil || *role == "" || *role == RoleStudent
}

// ForRole picks the daily rate and allowed borrow days for a borrower role.
func (s FineSettings) ForRole(role *string) (decimal.Decimal, int) {
	if IsStudent(role) {
		return s.StudentDailyFine, s.StudentBorrowDays
	}
	return s.FacultyDailyFine, s.FacultyBorrowDays
}
