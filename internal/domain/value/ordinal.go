package value

// EducationLevel is the parent's education on the 0 (none) to 4 (higher
// education) scale used by the training data.
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationPrimary
	EducationMiddle
	EducationSecondary
	EducationHigher
)

func (e EducationLevel) Valid() bool {
	return e >= EducationNone && e <= EducationHigher
}

// FriendsTime is the self-reported time spent with friends, 1 (very low) to
// 5 (very high).
type FriendsTime int

const (
	FriendsTimeMin FriendsTime = 1
	FriendsTimeMax FriendsTime = 5
)

func (f FriendsTime) Valid() bool {
	return f >= FriendsTimeMin && f <= FriendsTimeMax
}
