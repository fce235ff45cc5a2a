package orderid

// Flag tokens appended to an order identifier, in their fixed suffix order.
const (
	FlagUrgent   = "URG"
	FlagReferred = "RFR"
	FlagStudent  = "STD"
)

// Flags captures the optional order attributes that surface as suffix
// tokens on the identifier. The zero value means no flags, which is a
// valid state.
type Flags struct {
	urgent   bool
	referred bool
	student  bool
}

// NewFlags creates a Flags value from the three boolean attributes.
func NewFlags(urgent bool, referred bool, student bool) Flags {
	return Flags{
		urgent:   urgent,
		referred: referred,
		student:  student,
	}
}

// Urgent reports whether the order is flagged for urgent handling.
func (f Flags) Urgent() bool {
	return f.urgent
}

// Referred reports whether the order came through a referral.
func (f Flags) Referred() bool {
	return f.referred
}

// Student reports whether the order uses a student discount.
func (f Flags) Student() bool {
	return f.student
}

// Tokens returns the active flag tokens in the fixed suffix order:
// urgent, referred, student. Returns an empty slice when no flags are set.
func (f Flags) Tokens() []string {
	tokens := make([]string, 0, 3)
	if f.urgent {
		tokens = append(tokens, FlagUrgent)
	}
	if f.referred {
		tokens = append(tokens, FlagReferred)
	}
	if f.student {
		tokens = append(tokens, FlagStudent)
	}
	return tokens
}
