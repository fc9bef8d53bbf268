package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Field counts for the two record formats.
const (
	CustomerFields = 8
	PurchaseFields = 6
)

// fieldSep separates record fields. Values are written as-is; there is no
// quoting, so a value containing a comma will not survive a round trip.
const fieldSep = ","

// ParseCustomer parses one customer line:
//
//	first,last,account,street,city,state,zip,phone
//
// Fields past the eighth are ignored.
func ParseCustomer(line string) (Customer, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < CustomerFields {
		return Customer{}, fmt.Errorf("expected %d fields, got %d", CustomerFields, len(fields))
	}

	acct, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Customer{}, fmt.Errorf("invalid account number %q", fields[2])
	}

	return Customer{
		FirstName:     fields[0],
		LastName:      fields[1],
		AccountNumber: acct,
		Street:        fields[3],
		City:          fields[4],
		State:         fields[5],
		Zip:           fields[6],
		Phone:         fields[7],
	}, nil
}

// FormatCustomer renders c as a customer line without a trailing newline.
func FormatCustomer(c Customer) string {
	return strings.Join([]string{
		c.FirstName,
		c.LastName,
		strconv.Itoa(c.AccountNumber),
		c.Street,
		c.City,
		c.State,
		c.Zip,
		c.Phone,
	}, fieldSep)
}

// ParsePurchase parses one purchase line:
//
//	account,item,brand,color,date,amount
func ParsePurchase(line string) (Purchase, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < PurchaseFields {
		return Purchase{}, fmt.Errorf("expected %d fields, got %d", PurchaseFields, len(fields))
	}

	acct, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Purchase{}, fmt.Errorf("invalid account number %q", fields[0])
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
	if err != nil {
		return Purchase{}, fmt.Errorf("invalid amount %q", fields[5])
	}

	return Purchase{
		AccountNumber: acct,
		Item:          fields[1],
		Brand:         fields[2],
		Color:         fields[3],
		Date:          fields[4],
		Amount:        amount,
	}, nil
}

// FormatPurchase renders p as a purchase line without a trailing newline.
// The amount uses the shortest representation that parses back exactly.
func FormatPurchase(p Purchase) string {
	return strings.Join([]string{
		strconv.Itoa(p.AccountNumber),
		p.Item,
		p.Brand,
		p.Color,
		p.Date,
		strconv.FormatFloat(p.Amount, 'f', -1, 64),
	}, fieldSep)
}
