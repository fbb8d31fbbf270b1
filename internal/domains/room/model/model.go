package model

import (
	"fmt"
	"strings"

	"hotel/shared/validator"
)

const (
	EntityName = "room"

	// ValidationTag is the struct tag that restricts a field to a known room type.
	ValidationTag = "roomtype"
)

type Type string

const (
	TypeStandard  Type = "Standard Room"
	TypeDeluxe    Type = "Deluxe Room"
	TypeJunior    Type = "Junior Suite"
	TypeExecutive Type = "Executive Suite"
)

// Types lists the room types in catalog order.
var Types = []Type{TypeStandard, TypeDeluxe, TypeJunior, TypeExecutive}

// DefaultRates are the nightly rates used when configuration does not override them.
var DefaultRates = map[Type]float64{
	TypeStandard:  3500,
	TypeDeluxe:    5500,
	TypeJunior:    8000,
	TypeExecutive: 12000,
}

func (t Type) IsValid() bool {
	_, ok := DefaultRates[t]

	return ok
}

func init() {
	quoted := make([]string, len(Types))
	names := make([]string, len(Types))

	for i, roomType := range Types {
		quoted[i] = fmt.Sprintf("'%s'", roomType)
		names[i] = string(roomType)
	}

	validator.RegisterAlias(
		ValidationTag,
		"oneof="+strings.Join(quoted, " "),
		"{field} must be one of: "+strings.Join(names, ", "),
	)
}
