package content

// Kind is the shape a field value must have.
type Kind int

const (
	KindText Kind = iota + 1
	// KindURL is text that parses as an absolute URL.
	KindURL
	// KindTextList is an ordered list of text labels.
	KindTextList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindURL:
		return "url"
	case KindTextList:
		return "list of text"
	default:
		return "unknown"
	}
}

func (k Kind) valid() bool {
	return k >= KindText && k <= KindTextList
}
