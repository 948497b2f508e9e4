package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hsc_predictor/internal/domain/value"
)

func TestParseCategorical(t *testing.T) {
	rq := require.New(t)

	gender, err := value.ParseGender("F")
	rq.NoError(err)
	rq.Equal(value.GenderFemale, gender)

	_, err = value.ParseGender("f")
	rq.ErrorIs(err, value.ErrUnknownCategory)

	job, err := value.ParseMotherJob("At_home")
	rq.NoError(err)
	rq.Equal(value.MotherJobAtHome, job)

	// Business and Farmer are father-only occupations.
	_, err = value.ParseMotherJob("Business")
	rq.ErrorIs(err, value.ErrUnknownCategory)

	father, err := value.ParseFatherJob("Farmer")
	rq.NoError(err)
	rq.True(father.Valid())

	_, err = value.ParseFatherJob("At_home")
	rq.ErrorIs(err, value.ErrUnknownCategory)

	_, err = value.ParseYesNo("")
	rq.ErrorIs(err, value.ErrUnknownCategory)

	rq.False(value.ParentStatus("Divorced").Valid())
	rq.True(value.FamilySizeLE3.Valid())
	rq.True(value.AddressRural.Valid())
}

func TestStrings(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"Teacher", "Other", "Services", "Health", "Business", "Farmer"}, value.Strings(value.FatherJobs))
	rq.Equal([]string{"M", "F"}, value.Strings(value.Genders))
}

func TestOrdinal(t *testing.T) {
	rq := require.New(t)

	rq.True(value.EducationNone.Valid())
	rq.True(value.EducationHigher.Valid())
	rq.False(value.EducationLevel(-1).Valid())
	rq.False(value.EducationLevel(5).Valid())

	rq.True(value.FriendsTime(1).Valid())
	rq.True(value.FriendsTime(5).Valid())
	rq.False(value.FriendsTime(0).Valid())
	rq.False(value.FriendsTime(6).Valid())
}
