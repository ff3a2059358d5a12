package domain

// Source field tags that select a name parsing policy.
const (
	// TagPersonalName is the personal-name main entry.
	TagPersonalName = "100"

	// TagCorporateName is the corporate-name main entry.
	TagCorporateName = "110"

	// TagMeetingName is the meeting-name main entry.
	TagMeetingName = "111"

	// TagTitle is the title statement.
	TagTitle = "245"
)

// IsTitleLike reports whether a tag is parsed as a title, skipping a
// leading article.
func IsTitleLike(tag string) bool {
	switch tag {
	case TagTitle, TagCorporateName, TagMeetingName:
		return true
	default:
		return false
	}
}

// NameParts is the result of parsing a raw field value into name parts.
// Both fields empty means no usable name was found.
type NameParts struct {
	Lastname  string `json:"lastname"`
	Firstname string `json:"firstname"`
}

// IsEmpty returns true if no lastname was found.
func (n NameParts) IsEmpty() bool {
	return n.Lastname == ""
}
