package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"lead_qualifier/pkg/errcodes"
)

// QualificationThreshold is the lowest score of a qualified lead.
const QualificationThreshold = 70

const (
	QualifiedYes = "Yes"
	QualifiedNo  = "No"
)

func IsQualified(score int) bool {
	return score >= QualificationThreshold
}

// QualifiedLabel renders the qualified flag the way the lead table shows it.
func QualifiedLabel(qualified bool) string {
	if qualified {
		return QualifiedYes
	}

	return QualifiedNo
}

func ParseQualifiedLabel(s string) (bool, error) {
	switch s {
	case QualifiedYes:
		return true, nil
	case QualifiedNo:
		return false, nil
	default:
		return false, fmt.Errorf("unknown qualified label %q", s)
	}
}

// Qualification is the qualification status selector of a lead filter.
type Qualification string

const (
	QualificationAll         Qualification = "All"
	QualificationQualified   Qualification = "Qualified"
	QualificationUnqualified Qualification = "Unqualified"
)

func (q Qualification) String() string {
	return string(q)
}

func (q Qualification) Match(qualified bool) bool {
	switch q {
	case QualificationQualified:
		return qualified
	case QualificationUnqualified:
		return !qualified
	default:
		return true
	}
}

func ParseQualification(s string) (Qualification, error) {
	switch q := Qualification(s); q {
	case QualificationAll, QualificationQualified, QualificationUnqualified:
		return q, nil
	default:
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown qualification %q", s),
			failure.WithCode(errcodes.InvalidQualification),
			failure.WithDescription("Qualification must be one of All, Qualified, Unqualified"),
		)
	}
}
