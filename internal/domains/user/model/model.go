package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldUsername      = "username"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldRole          = "role"
	FieldFirstName     = "first_name"
	FieldMiddleName    = "middle_name"
	FieldLastName      = "last_name"
	FieldDateOfBirth   = "date_of_birth"
	FieldContactNumber = "contact_number"
	FieldLastLogin     = "last_login"
	FieldCreatedAt     = "created_at"
)

type User struct {
	ID            string     `db:"id"`
	Username      string     `db:"username"`
	Email         string     `db:"email"`
	Password      string     `db:"password"`
	Role          string     `db:"role"`
	FirstName     string     `db:"first_name"`
	MiddleName    string     `db:"middle_name"`
	LastName      string     `db:"last_name"`
	DateOfBirth   *time.Time `db:"date_of_birth"`
	ContactNumber string     `db:"contact_number"`
	LastLogin     *time.Time `db:"last_login"`
	model.Metadata
}
