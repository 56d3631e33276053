package model

import "net/url"

// Citation is cit:CI_Citation.
type Citation struct {
	Title                   string           `json:"title"`
	AlternateTitles         []string         `json:"alternateTitle,omitempty"`
	Dates                   []Date           `json:"date,omitempty"`
	Edition                 string           `json:"edition,omitempty"`
	Identifiers             []Identifier     `json:"identifier,omitempty"`
	CitedResponsibleParties []Responsibility `json:"citedResponsibleParty,omitempty"`
	OnlineResources         []OnlineResource `json:"onlineResource,omitempty"`
}

func (Citation) QName() string { return "cit:CI_Citation" }

// Date is cit:CI_Date.
type Date struct {
	Date     DateValue    `json:"date"`
	DateType DateTypeCode `json:"dateType" iso:"codelist=cit:CI_DateTypeCode"`
}

func (Date) QName() string { return "cit:CI_Date" }

// Party is cit:AbstractCI_Party, implemented by *Organisation and *Individual.
type Party interface {
	QName() string
	PartyName() string
	party()
}

// Responsibility is cit:CI_Responsibility. It owns exactly one party.
type Responsibility struct {
	Role  RoleCode `json:"role" iso:"codelist=cit:CI_RoleCode"`
	Party Party    `json:"party"`
}

func (Responsibility) QName() string { return "cit:CI_Responsibility" }

// NewResponsibility pairs a role with a party.
func NewResponsibility(role RoleCode, p Party) Responsibility {
	return Responsibility{Role: role, Party: p}
}

// Organisation is cit:CI_Organisation.
type Organisation struct {
	Name             string          `json:"name"`
	ContactInfo      []Contact       `json:"contactInfo,omitempty"`
	PartyIdentifiers []Identifier    `json:"partyIdentifier,omitempty"`
	Logo             []BrowseGraphic `json:"logo,omitempty"`
	Individuals      []*Individual   `json:"individual,omitempty"`
}

func (*Organisation) QName() string       { return "cit:CI_Organisation" }
func (o *Organisation) PartyName() string { return o.Name }
func (*Organisation) party()              {}

// Individual is cit:CI_Individual.
type Individual struct {
	Name             string       `json:"name"`
	PositionName     string       `json:"positionName,omitempty"`
	ContactInfo      []Contact    `json:"contactInfo,omitempty"`
	PartyIdentifiers []Identifier `json:"partyIdentifier,omitempty"`
}

func (*Individual) QName() string       { return "cit:CI_Individual" }
func (i *Individual) PartyName() string { return i.Name }
func (*Individual) party()              {}

// Contact is cit:CI_Contact.
type Contact struct {
	Phones              []Telephone      `json:"phone,omitempty"`
	Addresses           []Address        `json:"address,omitempty"`
	OnlineResources     []OnlineResource `json:"onlineResource,omitempty"`
	HoursOfService      string           `json:"hoursOfService,omitempty"`
	ContactInstructions string           `json:"contactInstructions,omitempty"`
}

func (Contact) QName() string { return "cit:CI_Contact" }

// EmailContact returns a contact holding a single e-mail address. An empty
// address still yields an address element, as the publisher contact needs one.
func EmailContact(email string) Contact {
	return Contact{Addresses: []Address{{ElectronicMailAddresses: []string{email}}}}
}

// Address is cit:CI_Address.
type Address struct {
	DeliveryPoints          []string `json:"deliveryPoint,omitempty"`
	City                    string   `json:"city,omitempty"`
	AdministrativeArea      string   `json:"administrativeArea,omitempty"`
	PostalCode              string   `json:"postalCode,omitempty"`
	Country                 string   `json:"country,omitempty"`
	ElectronicMailAddresses []string `json:"electronicMailAddress,omitempty"`
}

func (Address) QName() string { return "cit:CI_Address" }

// Telephone is cit:CI_Telephone.
type Telephone struct {
	Number     string            `json:"number"`
	NumberType TelephoneTypeCode `json:"numberType,omitempty" iso:"codelist=cit:CI_TelephoneTypeCode"`
}

func (Telephone) QName() string { return "cit:CI_Telephone" }

// OnlineResource is cit:CI_OnlineResource.
type OnlineResource struct {
	Linkage     string             `json:"linkage"`
	Protocol    string             `json:"protocol,omitempty"`
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Function    OnLineFunctionCode `json:"function,omitempty" iso:"codelist=cit:CI_OnLineFunctionCode"`
}

func (OnlineResource) QName() string { return "cit:CI_OnlineResource" }

// Link returns an online resource whose protocol is the URL scheme.
func Link(rawURL string) OnlineResource {
	r := OnlineResource{Linkage: rawURL}
	if u, err := url.Parse(rawURL); err == nil {
		r.Protocol = u.Scheme
	}
	return r
}
