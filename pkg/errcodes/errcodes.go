package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Фильтры и сортировка лидов
	InvalidQualification failure.ErrorCode = "InvalidQualification"
	InvalidLocation      failure.ErrorCode = "InvalidLocation"
	InvalidTimeline      failure.ErrorCode = "InvalidTimeline"
	InvalidPropertyType  failure.ErrorCode = "InvalidPropertyType"
	InvalidBudgetRange   failure.ErrorCode = "InvalidBudgetRange"
	InvalidSortField     failure.ErrorCode = "InvalidSortField"
	InvalidSortOrder     failure.ErrorCode = "InvalidSortOrder"

	// Экспорт
	InvalidCSV   failure.ErrorCode = "InvalidCSV"
	InvalidChart failure.ErrorCode = "InvalidChart"
)
