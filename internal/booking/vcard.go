package booking

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/tartampluch/salon-desk/internal/config"
)

// ImportCustomer pre-fills a customer draft from the first contact in a
// vCard stream. Name strategy: the structured N field when present
// (it already separates given and family name), otherwise the formatted
// FN split on its last space. The first TEL value becomes the phone
// number. Fields the card lacks stay empty; the operator completes them
// in the form.
func ImportCustomer(r io.Reader) (CustomerDraft, error) {
	card, err := vcard.NewDecoder(r).Decode()
	if errors.Is(err, io.EOF) {
		return CustomerDraft{}, errors.New(config.ErrNoVCard)
	}
	if err != nil {
		return CustomerDraft{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}

	var d CustomerDraft

	if n := card.Name(); n != nil && (n.GivenName != "" || n.FamilyName != "") {
		d.FirstName = n.GivenName
		d.LastName = n.FamilyName
	} else if fn := card.Value(vcard.FieldFormattedName); fn != "" {
		d.FirstName, d.LastName = splitFullName(fn)
	}

	d.PhoneNumber = card.Value(vcard.FieldTelephone)

	return d, nil
}

// splitFullName treats everything after the last space as the last name,
// which matches how the backend stores compound first names.
func splitFullName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if i := strings.LastIndex(full, " "); i >= 0 {
		return full[:i], full[i+1:]
	}
	return full, ""
}
