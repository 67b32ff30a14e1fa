package models

// HotelSettings is a singleton record, not a collection.
type HotelSettings struct {
	HotelName          string  `json:"hotelName"`
	Address            string  `json:"address"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Description        string  `json:"description"`
	CheckInTime        string  `json:"checkInTime"`
	CheckOutTime       string  `json:"checkOutTime"`
	CancellationPolicy string  `json:"cancellationPolicy"`
	TaxRate            float64 `json:"taxRate"` // percentage
}
