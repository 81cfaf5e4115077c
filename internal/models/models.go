package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ImageRef is a stored media reference: the serving URL plus the opaque
// identifier the media host assigned to the asset.
type ImageRef struct {
	URL     string `json:"url"`
	AssetID string `json:"assetId"`
}

type ImageList []ImageRef

type StringList []string

// ContactInfo is the contact sub-record embedded in a product.
type ContactInfo struct {
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

type Product struct {
	ProductID    string      `json:"productId" db:"product_id"`
	Year         int         `json:"year" db:"year"`
	Make         string      `json:"make" db:"make"`
	Model        string      `json:"model" db:"model"`
	Tag          string      `json:"tag" db:"tag"`
	Stock        int         `json:"stock" db:"stock"`
	Engine       string      `json:"engine" db:"engine"`
	Transmission string      `json:"transmission" db:"transmission"`
	Drivetrain   string      `json:"drivetrain" db:"drivetrain"`
	Exterior     string      `json:"exterior" db:"exterior"`
	Interior     string      `json:"interior" db:"interior"`
	Odometer     float64     `json:"odometer" db:"odometer"`
	HwyL100Km    float64     `json:"hwy_l100km" db:"hwy_l100km"`
	CityL100Km   float64     `json:"city_l100km" db:"city_l100km"`
	CarfaxURL    string      `json:"carfax_url" db:"carfax_url"`
	Price        float64     `json:"price" db:"price"`
	Description  string      `json:"description" db:"description"`
	Hwy          string      `json:"hwy" db:"hwy"`
	City         string      `json:"city" db:"city"`
	Features     StringList  `json:"features" db:"features"`
	Badges       StringList  `json:"badges" db:"badges"`
	Contact      ContactInfo `json:"contact" db:"contact"`
	MainImage    *ImageRef   `json:"mainImage" db:"main_image"`
	Gallery      ImageList   `json:"gallery" db:"gallery"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
}

// Contact is one inbound contact-form submission. Never updated or deleted.
type Contact struct {
	ContactID string    `json:"contactId" db:"contact_id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Mobile    string    `json:"mobile" db:"mobile"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Principal is the identity embedded in a verified token. Not stored.
type Principal struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// JSONB plumbing so sqlx can read and write the document-shaped columns.

func jsonbValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error serializing jsonb value: %w", err)
	}
	return b, nil
}

func jsonbScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected jsonb source type %T", src)
	}
	return json.Unmarshal(b, dst)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue(ImageList{})
	}
	return jsonbValue([]ImageRef(l))
}

func (l *ImageList) Scan(src interface{}) error {
	return jsonbScan(src, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue(StringList{})
	}
	return jsonbValue([]string(l))
}

func (l *StringList) Scan(src interface{}) error {
	return jsonbScan(src, l)
}

func (c ContactInfo) Value() (driver.Value, error) {
	return jsonbValue(c)
}

func (c *ContactInfo) Scan(src interface{}) error {
	return jsonbScan(src, c)
}

func (r *ImageRef) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return jsonbValue(*r)
}

func (r *ImageRef) Scan(src interface{}) error {
	return jsonbScan(src, r)
}
