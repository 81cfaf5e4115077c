package models

// ProductPayload is the typed form of the multipart "data" field. Fields are
// pointers so an update only replaces what the caller actually sent; image
// fields are never part of the payload, they come from the upload pipeline.
type ProductPayload struct {
	Year         *int         `json:"year"`
	Make         *string      `json:"make"`
	Model        *string      `json:"model"`
	Tag          *string      `json:"tag"`
	Stock        *int         `json:"stock"`
	Engine       *string      `json:"engine"`
	Transmission *string      `json:"transmission"`
	Drivetrain   *string      `json:"drivetrain"`
	Exterior     *string      `json:"exterior"`
	Interior     *string      `json:"interior"`
	Odometer     *float64     `json:"odometer"`
	HwyL100Km    *float64     `json:"hwy_l100km"`
	CityL100Km   *float64     `json:"city_l100km"`
	CarfaxURL    *string      `json:"carfax_url"`
	Price        *float64     `json:"price"`
	Description  *string      `json:"description"`
	Hwy          *string      `json:"hwy"`
	City         *string      `json:"city"`
	Features     *StringList  `json:"features"`
	Badges       *StringList  `json:"badges"`
	Contact      *ContactInfo `json:"contact"`
}

// ApplyTo copies the fields present in the payload onto the product.
func (p *ProductPayload) ApplyTo(product *Product) {
	if p.Year != nil {
		product.Year = *p.Year
	}
	if p.Make != nil {
		product.Make = *p.Make
	}
	if p.Model != nil {
		product.Model = *p.Model
	}
	if p.Tag != nil {
		product.Tag = *p.Tag
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.Engine != nil {
		product.Engine = *p.Engine
	}
	if p.Transmission != nil {
		product.Transmission = *p.Transmission
	}
	if p.Drivetrain != nil {
		product.Drivetrain = *p.Drivetrain
	}
	if p.Exterior != nil {
		product.Exterior = *p.Exterior
	}
	if p.Interior != nil {
		product.Interior = *p.Interior
	}
	if p.Odometer != nil {
		product.Odometer = *p.Odometer
	}
	if p.HwyL100Km != nil {
		product.HwyL100Km = *p.HwyL100Km
	}
	if p.CityL100Km != nil {
		product.CityL100Km = *p.CityL100Km
	}
	if p.CarfaxURL != nil {
		product.CarfaxURL = *p.CarfaxURL
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Hwy != nil {
		product.Hwy = *p.Hwy
	}
	if p.City != nil {
		product.City = *p.City
	}
	if p.Features != nil {
		product.Features = *p.Features
	}
	if p.Badges != nil {
		product.Badges = *p.Badges
	}
	if p.Contact != nil {
		product.Contact = *p.Contact
	}
}
