package dto

import (
	"github.com/google/uuid"

	"hotel/internal/domains/user/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

type CreateUserRequest struct {
	Username      string `json:"username"      validate:"required,min=4,max=50"`
	Email         string `json:"email"         validate:"required,email"`
	Password      string `json:"password"      validate:"required,min=8,max=72"`
	FirstName     string `json:"firstName"     validate:"required,max=100"`
	MiddleName    string `json:"middleName"    validate:"omitempty,max=100"`
	LastName      string `json:"lastName"      validate:"required,max=100"`
	DateOfBirth   string `json:"dateOfBirth"   validate:"required,isodate"`
	ContactNumber string `json:"contactNumber" validate:"required,max=20"`
	Role          string `json:"role"          validate:"omitempty,oneof=admin user"`
}

func (r *CreateUserRequest) ToModel(actor, hashedPassword string) (model.User, error) {
	dob, err := timezone.ParseISO(r.DateOfBirth)
	if err != nil {
		return model.User{}, err
	}

	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	now := timezone.Now()

	return model.User{
		ID:            uuid.NewString(),
		Username:      r.Username,
		Email:         r.Email,
		Password:      hashedPassword,
		Role:          role,
		FirstName:     r.FirstName,
		MiddleName:    r.MiddleName,
		LastName:      r.LastName,
		DateOfBirth:   &dob,
		ContactNumber: r.ContactNumber,
		Metadata:      gModel.NewMetadata(actor, now),
	}, nil
}

type UserResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	FirstName     string  `json:"firstName"`
	MiddleName    string  `json:"middleName,omitempty"`
	LastName      string  `json:"lastName"`
	DateOfBirth   string  `json:"dateOfBirth,omitempty"`
	ContactNumber string  `json:"contactNumber"`
	Role          string  `json:"role"`
	IsAdmin       bool    `json:"isAdmin"`
	LastLogin     *string `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.MiddleName = model.MiddleName
	r.LastName = model.LastName
	r.ContactNumber = model.ContactNumber
	r.Role = model.Role
	r.IsAdmin = model.Role == constant.RoleAdmin

	if model.DateOfBirth != nil {
		r.DateOfBirth = model.DateOfBirth.UTC().Format(timezone.ISODateLayout)
	}

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(model.Metadata)
}

// UpdateUserRequest is an admin edit. Passwords are changed only through the
// owner's change-password flow.
type UpdateUserRequest struct {
	Username      *string `json:"username,omitempty"      validate:"omitempty,min=4,max=50"`
	Email         *string `json:"email,omitempty"         validate:"omitempty,email"`
	FirstName     *string `json:"firstName,omitempty"     validate:"omitempty,min=1,max=100"`
	MiddleName    *string `json:"middleName,omitempty"    validate:"omitempty,max=100"`
	LastName      *string `json:"lastName,omitempty"      validate:"omitempty,min=1,max=100"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty"   validate:"omitempty,isodate"`
	ContactNumber *string `json:"contactNumber,omitempty" validate:"omitempty,min=1,max=20"`
	Role          *string `json:"role,omitempty"          validate:"omitempty,oneof=admin user"`
	Password      *string `json:"password,omitempty"      validate:"empty"`
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Username == nil && r.Email == nil && r.FirstName == nil && r.MiddleName == nil &&
		r.LastName == nil && r.DateOfBirth == nil && r.ContactNumber == nil && r.Role == nil
}

// ToFields returns the columns to update, stamped with the acting user.
func (r *UpdateUserRequest) ToFields(actor string) (map[string]any, error) {
	fields := map[string]any{}

	set := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}

	set(model.FieldUsername, r.Username)
	set(model.FieldEmail, r.Email)
	set(model.FieldFirstName, r.FirstName)
	set(model.FieldMiddleName, r.MiddleName)
	set(model.FieldLastName, r.LastName)
	set(model.FieldContactNumber, r.ContactNumber)
	set(model.FieldRole, r.Role)

	if r.DateOfBirth != nil {
		dob, err := timezone.ParseISO(*r.DateOfBirth)
		if err != nil {
			return nil, err
		}

		fields[model.FieldDateOfBirth] = dob
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = actor

	return fields, nil
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	Count     int            `json:"count"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Count = len(models)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
