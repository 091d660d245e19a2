package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Amount is a monetary value that decodes leniently. Client payloads send
// amounts as numbers, numeric strings, empty strings or null; anything
// unparseable decodes to zero instead of failing the whole request.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}

	s := string(data)
	if s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		s = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}

	*a = Amount(f)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Order is a supplier order tracked on the dashboard.
//
// OrderDate is a plain "2006-01-02" string, never a timestamp: grouping and
// the date filter compare it byte-for-byte. LastUpdated drives the listing
// order and is bumped by GORM on every save.
type Order struct {
	gorm.Model
	OrderCode      string    `gorm:"size:64;uniqueIndex" json:"order_code"`
	CustomerName   string    `gorm:"size:255;index" json:"customer_name"`
	FBProfile      string    `gorm:"size:255" json:"fb_profile"`
	OrderDetails   string    `gorm:"type:text" json:"order_details"`
	AttachmentURL  string    `gorm:"size:1024" json:"attachment_url"`
	Status         string    `gorm:"size:50;default:pending;index" json:"status"`
	OrderDate      string    `gorm:"size:10;index" json:"order_date"`
	DeliveryMethod string    `gorm:"size:50;default:jnt;index" json:"delivery_method"`
	PaidProduct    float64   `gorm:"not null;default:0" json:"paid_product"`
	PaidShipping   float64   `gorm:"not null;default:0" json:"paid_shipping"`
	Notes          string    `gorm:"type:text" json:"notes"`
	LastUpdated    time.Time `gorm:"autoUpdateTime;index" json:"last_updated"`
}

// Statuses an order can be in. Anything else is stored as-is but excluded
// from status tallies.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// KnownStatuses lists the statuses the dashboard tallies, in display order.
var KnownStatuses = []string{
	StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

// Delivery methods the filter tabs know about.
const (
	DeliveryJNT    = "jnt"
	DeliveryWalkin = "walkin"
)
