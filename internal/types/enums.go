package types

// RelationshipType selects the tone-setting RELATIONSHIP sentence.
type RelationshipType string

const (
	RelationshipFriend   RelationshipType = "friend"
	RelationshipRomantic RelationshipType = "romantic"
	RelationshipMentor   RelationshipType = "mentor"
	RelationshipCreative RelationshipType = "creative"

	// DefaultRelationship absorbs every unrecognized relationship value.
	DefaultRelationship = RelationshipCreative
)

// Relationships lists the known relationship types in display order.
var Relationships = []RelationshipType{
	RelationshipFriend,
	RelationshipRomantic,
	RelationshipMentor,
	RelationshipCreative,
}

// Known reports whether r is one of the four relationship types.
func (r RelationshipType) Known() bool {
	switch r {
	case RelationshipFriend, RelationshipRomantic, RelationshipMentor, RelationshipCreative:
		return true
	default:
		return false
	}
}

// Resolve maps r onto a known relationship type, falling back to
// DefaultRelationship.
func (r RelationshipType) Resolve() RelationshipType {
	if r.Known() {
		return r
	}
	return DefaultRelationship
}

// ResponseLength is the preferred reply length.
type ResponseLength string

const (
	LengthShort  ResponseLength = "short"
	LengthMedium ResponseLength = "medium"
	LengthLong   ResponseLength = "long"

	DefaultLength = LengthMedium
)

// Resolve maps l onto a known length, falling back to DefaultLength.
func (l ResponseLength) Resolve() ResponseLength {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return l
	default:
		return DefaultLength
	}
}

// ResponseDetail is the preferred level of explanation.
type ResponseDetail string

const (
	DetailSimple   ResponseDetail = "simple"
	DetailModerate ResponseDetail = "moderate"
	DetailDetailed ResponseDetail = "detailed"

	DefaultDetail = DetailModerate
)

// Resolve maps d onto a known detail level, falling back to DefaultDetail.
func (d ResponseDetail) Resolve() ResponseDetail {
	switch d {
	case DetailSimple, DetailModerate, DetailDetailed:
		return d
	default:
		return DefaultDetail
	}
}
