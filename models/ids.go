package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"gorm.io/gorm"
)

// Public identifier prefixes, one per entity.
const (
	CustomerIDPrefix = "C"
	OrderIDPrefix    = "O"
	FollowUpIDPrefix = "F"
)

var idPattern = regexp.MustCompile(`^[A-Z][0-9]{3,}$`)

// ValidID reports whether id is a well-formed public identifier for the
// given prefix: the prefix letter followed by at least three digits.
func ValidID(prefix, id string) bool {
	return idPattern.MatchString(id) && id[:1] == prefix
}

// nextID increments the numeric suffix of the latest assigned id. The
// %03d pad widens naturally once the sequence passes 999 (C999 -> C1000).
func nextID(prefix, last string) (string, error) {
	if !ValidID(prefix, last) {
		return "", fmt.Errorf("stored id %q does not match %sNNN format", last, prefix)
	}
	n, err := strconv.Atoi(last[1:])
	if err != nil {
		return "", fmt.Errorf("stored id %q: %w", last, err)
	}
	return fmt.Sprintf("%s%03d", prefix, n+1), nil
}

// NextCustomerID returns the id to assign to a new customer: the most
// recently inserted customer's id plus one, or C001 on an empty table.
func NextCustomerID(db *gorm.DB) (string, error) {
	var c Customer
	if err := db.Order("id DESC").First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "C001", nil
		}
		return "", err
	}
	return nextID(CustomerIDPrefix, c.CustomerID)
}

// NextOrderID returns the id to assign to a new order, O001 on an empty
// table.
func NextOrderID(db *gorm.DB) (string, error) {
	var o Order
	if err := db.Order("id DESC").First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "O001", nil
		}
		return "", err
	}
	return nextID(OrderIDPrefix, o.OrderID)
}

// NextFollowUpID returns the id to assign to a new follow-up, F001 on an
// empty table.
func NextFollowUpID(db *gorm.DB) (string, error) {
	var f FollowUp
	if err := db.Order("id DESC").First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "F001", nil
		}
		return "", err
	}
	return nextID(FollowUpIDPrefix, f.FuID)
}
