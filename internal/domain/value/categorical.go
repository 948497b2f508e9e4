package value

import (
	"errors"
	"fmt"
	"slices"

	"hsc_predictor/pkg/lox"
)

var ErrUnknownCategory = errors.New("unknown category")

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type Address string

const (
	AddressUrban Address = "Urban"
	AddressRural Address = "Rural"
)

type FamilySize string

const (
	FamilySizeGT3 FamilySize = "GT3"
	FamilySizeLE3 FamilySize = "LE3"
)

type ParentStatus string

const (
	ParentStatusTogether ParentStatus = "Together"
	ParentStatusApart    ParentStatus = "Apart"
)

type MotherJob string

const (
	MotherJobAtHome   MotherJob = "At_home"
	MotherJobHealth   MotherJob = "Health"
	MotherJobServices MotherJob = "Services"
	MotherJobTeacher  MotherJob = "Teacher"
	MotherJobOther    MotherJob = "Other"
)

type FatherJob string

const (
	FatherJobTeacher  FatherJob = "Teacher"
	FatherJobOther    FatherJob = "Other"
	FatherJobServices FatherJob = "Services"
	FatherJobHealth   FatherJob = "Health"
	FatherJobBusiness FatherJob = "Business"
	FatherJobFarmer   FatherJob = "Farmer"
)

type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// Option lists, in the order the form shows them.
//
//nolint:gochecknoglobals
var (
	Genders        = []Gender{GenderMale, GenderFemale}
	Addresses      = []Address{AddressUrban, AddressRural}
	FamilySizes    = []FamilySize{FamilySizeGT3, FamilySizeLE3}
	ParentStatuses = []ParentStatus{ParentStatusTogether, ParentStatusApart}
	MotherJobs     = []MotherJob{MotherJobAtHome, MotherJobHealth, MotherJobServices, MotherJobTeacher, MotherJobOther}
	FatherJobs     = []FatherJob{
		FatherJobTeacher, FatherJobOther, FatherJobServices, FatherJobHealth, FatherJobBusiness, FatherJobFarmer,
	}
	YesNos = []YesNo{Yes, No}
)

func (g Gender) Valid() bool       { return slices.Contains(Genders, g) }
func (a Address) Valid() bool      { return slices.Contains(Addresses, a) }
func (f FamilySize) Valid() bool   { return slices.Contains(FamilySizes, f) }
func (p ParentStatus) Valid() bool { return slices.Contains(ParentStatuses, p) }
func (m MotherJob) Valid() bool    { return slices.Contains(MotherJobs, m) }
func (f FatherJob) Valid() bool    { return slices.Contains(FatherJobs, f) }
func (y YesNo) Valid() bool        { return slices.Contains(YesNos, y) }

func (g Gender) String() string       { return string(g) }
func (a Address) String() string      { return string(a) }
func (f FamilySize) String() string   { return string(f) }
func (p ParentStatus) String() string { return string(p) }
func (m MotherJob) String() string    { return string(m) }
func (f FatherJob) String() string    { return string(f) }
func (y YesNo) String() string        { return string(y) }

func ParseGender(s string) (Gender, error)             { return parse(s, Genders) }
func ParseAddress(s string) (Address, error)           { return parse(s, Addresses) }
func ParseFamilySize(s string) (FamilySize, error)     { return parse(s, FamilySizes) }
func ParseParentStatus(s string) (ParentStatus, error) { return parse(s, ParentStatuses) }
func ParseMotherJob(s string) (MotherJob, error)       { return parse(s, MotherJobs) }
func ParseFatherJob(s string) (FatherJob, error)       { return parse(s, FatherJobs) }
func ParseYesNo(s string) (YesNo, error)               { return parse(s, YesNos) }

// Strings converts an option list into its wire values.
func Strings[T ~string](items []T) []string {
	return lox.Map(items, func(item T) string { return string(item) })
}

func parse[T ~string](s string, allowed []T) (T, error) {
	v := T(s)
	if !slices.Contains(allowed, v) {
		var zero T
		return zero, fmt.Errorf("%q: %w", s, ErrUnknownCategory)
	}
	return v, nil
}
