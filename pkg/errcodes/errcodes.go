package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Prediction request.
	InvalidAge          failure.ErrorCode = "InvalidAge"
	InvalidSSCResult    failure.ErrorCode = "InvalidSSCResult"
	InvalidTuitionFee   failure.ErrorCode = "InvalidTuitionFee"
	InvalidEducation    failure.ErrorCode = "InvalidEducation"
	InvalidTimeFriends  failure.ErrorCode = "InvalidTimeFriends"
	InvalidCategory     failure.ErrorCode = "InvalidCategory"
	InvalidPredictInput failure.ErrorCode = "InvalidPredictInput"

	// Model capability.
	ModelArtifactInvalid failure.ErrorCode = "ModelArtifactInvalid"
	ModelSchemaMismatch  failure.ErrorCode = "ModelSchemaMismatch"
	ModelUnavailable     failure.ErrorCode = "ModelUnavailable"
	ModelBadResponse     failure.ErrorCode = "ModelBadResponse"
	ModelPanicked        failure.ErrorCode = "ModelPanicked"

	// Prediction cache.
	CacheMiss failure.ErrorCode = "CacheMiss"
)
