package models

const InquiryCollection = "inquiry"

// Inquiry is a lead submitted against a listing. PropertyID is advisory and
// may reference a property that does not exist.
type Inquiry struct {
	PropertyID *string `bson:"property_id" json:"property_id"`
	Name       string  `bson:"name" json:"name"`
	Email      string  `bson:"email" json:"email"`
	Phone      *string `bson:"phone" json:"phone"`
	Message    string  `bson:"message" json:"message"`
}
