package models

import (
	"testing"

	"RealEstateAPI/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProperty = `{
	"title": "Sunny loft",
	"price": 350000,
	"address": "12 Main St",
	"city": "Austin",
	"state": "TX",
	"beds": 2,
	"baths": 1.5,
	"area_sqft": 980
}`

func newTestValidator(t *testing.T) *utils.Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidateProperty(t *testing.T) {
	v := newTestValidator(t)

	t.Run("applies defaults and ignores unknown fields", func(t *testing.T) {
		body := `{"title":"Loft","price":1,"address":"a","city":"b","state":"c","beds":1,"baths":1,"area_sqft":10,"pool":true}`

		var p Property
		require.NoError(t, v.Validate(PropertySchema, []byte(body), &p))

		assert.Equal(t, ListedTypeSale, p.ListedType)
		assert.False(t, p.Featured)
		assert.Nil(t, p.Description)
		assert.Nil(t, p.Gallery)
	})

	t.Run("decodes all fields", func(t *testing.T) {
		body := `{"title":"Loft","description":"nice","price":1200.5,"address":"a","city":"Austin","state":"TX",
			"beds":3.0,"baths":2.5,"area_sqft":1500,"image_url":"http://img/1.jpg",
			"gallery":["http://img/2.jpg","http://img/3.jpg"],"listed_type":"rent","featured":true}`

		var p Property
		require.NoError(t, v.Validate(PropertySchema, []byte(body), &p))

		assert.Equal(t, "Loft", p.Title)
		require.NotNil(t, p.Description)
		assert.Equal(t, "nice", *p.Description)
		assert.Equal(t, 1200.5, p.Price)
		assert.Equal(t, 3, p.Beds)
		assert.Equal(t, 2.5, p.Baths)
		assert.Equal(t, 1500, p.AreaSqFt)
		assert.Equal(t, []string{"http://img/2.jpg", "http://img/3.jpg"}, p.Gallery)
		assert.Equal(t, ListedTypeRent, p.ListedType)
		assert.True(t, p.Featured)
	})

	t.Run("rejects negative numbers naming each field", func(t *testing.T) {
		body := `{"title":"Loft","price":-1,"address":"a","city":"b","state":"c","beds":-2,"baths":-0.5,"area_sqft":-10}`

		var p Property
		err := v.Validate(PropertySchema, []byte(body), &p)

		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		for _, field := range []string{"price", "beds", "baths", "area_sqft"} {
			assert.True(t, verr.Has(field, utils.ReasonOutOfRange), "expected %s to be out of range", field)
		}
		assert.Len(t, verr.Fields, 4)
	})

	t.Run("reports every missing required field", func(t *testing.T) {
		var p Property
		err := v.Validate(PropertySchema, []byte(`{"title":"Loft"}`), &p)

		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		for _, field := range []string{"price", "address", "city", "state", "beds", "baths", "area_sqft"} {
			assert.True(t, verr.Has(field, utils.ReasonMissing), "expected %s to be missing", field)
		}
		assert.False(t, verr.Has("title", utils.ReasonMissing))
	})

	t.Run("reports wrong types", func(t *testing.T) {
		body := `{"title":"Loft","price":"cheap","address":"a","city":"b","state":"c","beds":1.5,"baths":1,"area_sqft":10,"featured":"yes","gallery":["ok",3]}`

		var p Property
		err := v.Validate(PropertySchema, []byte(body), &p)

		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("price", utils.ReasonWrongType))
		assert.True(t, verr.Has("beds", utils.ReasonWrongType))
		assert.True(t, verr.Has("featured", utils.ReasonWrongType))
		assert.True(t, verr.Has("gallery.1", utils.ReasonWrongType))
	})

	t.Run("rejects unknown listing type", func(t *testing.T) {
		body := `{"title":"Loft","price":1,"address":"a","city":"b","state":"c","beds":1,"baths":1,"area_sqft":10,"listed_type":"lease"}`

		var p Property
		err := v.Validate(PropertySchema, []byte(body), &p)

		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("listed_type", utils.ReasonInvalidChoice))
	})

	t.Run("rejects bodies that are not objects", func(t *testing.T) {
		for _, body := range []string{`[1,2]`, `{"title":`, ``} {
			var p Property
			err := v.Validate(PropertySchema, []byte(body), &p)

			var verr *utils.ValidationError
			require.ErrorAs(t, err, &verr, body)
			assert.True(t, verr.Has("body", utils.ReasonMalformed))
		}
	})
}

func TestValidateInquiry(t *testing.T) {
	v := newTestValidator(t)

	t.Run("accepts a valid email", func(t *testing.T) {
		var in Inquiry
		require.NoError(t, v.Validate(InquirySchema, []byte(`{"name":"Ann","email":"a@b.com","message":"Is it available?"}`), &in))

		assert.Equal(t, "a@b.com", in.Email)
		assert.Nil(t, in.PropertyID)
		assert.Nil(t, in.Phone)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		var in Inquiry
		err := v.Validate(InquirySchema, []byte(`{"name":"Ann","email":"not-an-email","message":"hi"}`), &in)

		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("email", utils.ReasonMalformed))
	})

	t.Run("keeps a dangling property reference", func(t *testing.T) {
		var in Inquiry
		require.NoError(t, v.Validate(InquirySchema, []byte(`{"property_id":"does-not-exist","name":"Ann","email":"a@b.com","phone":"555","message":"hi"}`), &in))

		require.NotNil(t, in.PropertyID)
		assert.Equal(t, "does-not-exist", *in.PropertyID)
		require.NotNil(t, in.Phone)
		assert.Equal(t, "555", *in.Phone)
	})
}

func TestPropertyFilterDocument(t *testing.T) {
	city := "Austin"
	empty := ""
	featured := false

	assert.Equal(t, map[string]any{}, PropertyFilter{}.Document())
	assert.Equal(t, map[string]any{}, PropertyFilter{City: &empty}.Document())
	assert.Equal(t, map[string]any{"city": "Austin", "featured": false}, PropertyFilter{City: &city, Featured: &featured}.Document())
}
