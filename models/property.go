package models

const PropertyCollection = "property"

const (
	ListedTypeSale = "sale"
	ListedTypeRent = "rent"
)

// Property is a listing as accepted from clients. The document id is
// assigned by the database on insert.
type Property struct {
	Title       string   `bson:"title" json:"title"`
	Description *string  `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Address     string   `bson:"address" json:"address"`
	City        string   `bson:"city" json:"city"`
	State       string   `bson:"state" json:"state"`
	Beds        int      `bson:"beds" json:"beds"`
	Baths       float64  `bson:"baths" json:"baths"`
	AreaSqFt    int      `bson:"area_sqft" json:"area_sqft"`
	ImageURL    *string  `bson:"image_url" json:"image_url"`
	Gallery     []string `bson:"gallery" json:"gallery"`
	ListedType  string   `bson:"listed_type" json:"listed_type"`
	Featured    bool     `bson:"featured" json:"featured"`
}

// PropertyFilter holds the equality filters accepted by the listing
// endpoint. Nil fields are not filtered on.
type PropertyFilter struct {
	City     *string
	Featured *bool
	Limit    int64
}

const DefaultPropertyLimit = 20

// Document builds the storage filter. Only exact matches are supported.
func (f PropertyFilter) Document() map[string]any {
	filter := map[string]any{}
	if f.City != nil && *f.City != "" {
		filter["city"] = *f.City
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	return filter
}
