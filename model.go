package citefile

import (
	"fmt"
	"strings"
	"time"

	"github.com/reoring/citefile/codec"
)

// DefaultMessage is substituted when a document omits message.
const DefaultMessage = "If you use this software, please cite it using the metadata from this file."

// Citation is the complete metadata record for one citable work. A Citation
// returned by Parse or Decode owns all nested values and is not modified
// afterwards.
type Citation struct {
	Abstract           string       `json:"abstract,omitempty"`
	Authors            []Author     `json:"authors"`
	SchemaVersion      string       `json:"cff-version"`
	Commit             string       `json:"commit,omitempty"`
	Contact            []Author     `json:"contact,omitempty"`
	DateReleased       *Date        `json:"date-released,omitempty"`
	DOI                string       `json:"doi,omitempty"`
	Identifiers        []Identifier `json:"identifiers,omitempty"`
	Keywords           []string     `json:"keywords,omitempty"`
	License            License      `json:"license,omitempty"`
	LicenseURL         string       `json:"license-url,omitempty"`
	Message            string       `json:"message"`
	PreferredCitation  *Reference   `json:"preferred-citation,omitempty"`
	References         []Reference  `json:"references,omitempty"`
	Repository         string       `json:"repository,omitempty"`
	RepositoryArtifact string       `json:"repository-artifact,omitempty"`
	RepositoryCode     string       `json:"repository-code,omitempty"`
	Title              string       `json:"title"`
	Type               Type         `json:"type"`
	URL                string       `json:"url,omitempty"`
	Version            string       `json:"version,omitempty"`
}

// Validate runs the format-level checks on c; see the package-level Validate.
func (c *Citation) Validate() Issues { return Validate(c) }

// AuthorKind tags the variant of an Author.
type AuthorKind int

const (
	KindPerson AuthorKind = iota + 1
	KindEntity
)

func (k AuthorKind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindEntity:
		return "entity"
	default:
		return fmt.Sprintf("AuthorKind(%d)", int(k))
	}
}

// Author is a person or an entity. The set of implementations is closed:
// *Person and *Entity.
type Author interface {
	Kind() AuthorKind
	// DisplayName renders the author the way citations print it.
	DisplayName() string
	sealedAuthor()
}

// Contactable holds the address fields persons and entities share.
type Contactable struct {
	Address  string `json:"address,omitempty"`
	Alias    string `json:"alias,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	Email    string `json:"email,omitempty"`
	Fax      string `json:"fax,omitempty"`
	ORCID    string `json:"orcid,omitempty"`
	PostCode string `json:"post-code,omitempty"`
	Region   string `json:"region,omitempty"`
	Tel      string `json:"tel,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Person is a natural person.
type Person struct {
	GivenNames   string `json:"given-names"`
	FamilyNames  string `json:"family-names"`
	NameParticle string `json:"name-particle,omitempty"`
	NameSuffix   string `json:"name-suffix,omitempty"`
	Affiliation  string `json:"affiliation,omitempty"`
	Contactable
}

func (*Person) Kind() AuthorKind { return KindPerson }
func (*Person) sealedAuthor()    {}

func (p *Person) DisplayName() string {
	parts := []string{p.GivenNames}
	if p.NameParticle != "" {
		parts = append(parts, p.NameParticle)
	}
	parts = append(parts, p.FamilyNames)
	s := strings.Join(parts, " ")
	if p.NameSuffix != "" {
		s += ", " + p.NameSuffix
	}
	return s
}

// Entity is an organization, team, conference or other non-person author.
type Entity struct {
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	DateStart *Date  `json:"date-start,omitempty"`
	DateEnd   *Date  `json:"date-end,omitempty"`
	Contactable
}

func (*Entity) Kind() AuthorKind      { return KindEntity }
func (*Entity) sealedAuthor()         {}
func (e *Entity) DisplayName() string { return e.Name }

// Type is the kind of work a citation file describes.
type Type int

const (
	TypeSoftware Type = iota
	TypeDataset
)

var typeSet = NewEnumSet(
	EnumVariant[Type]{Value: TypeSoftware, Label: "software"},
	EnumVariant[Type]{Value: TypeDataset, Label: "dataset"},
).WithDefault(TypeSoftware)

func (t Type) String() string {
	if l := typeSet.Label(t); l != "" {
		return l
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText renders the CFF spelling.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// IdentifierType is the scheme of an Identifier value.
type IdentifierType int

const (
	IdentifierDOI IdentifierType = iota + 1
	IdentifierURL
	IdentifierSWH
	IdentifierOther
)

var identifierTypeSet = NewEnumSet(
	EnumVariant[IdentifierType]{Value: IdentifierDOI, Label: "doi"},
	EnumVariant[IdentifierType]{Value: IdentifierURL, Label: "url"},
	EnumVariant[IdentifierType]{Value: IdentifierSWH, Label: "swh"},
	EnumVariant[IdentifierType]{Value: IdentifierOther, Label: "other"},
)

func (t IdentifierType) String() string               { return identifierTypeSet.Label(t) }
func (t IdentifierType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Identifier is an additional persistent identifier of the work.
type Identifier struct {
	Type        IdentifierType `json:"type"`
	Value       string         `json:"value"`
	Description string         `json:"description,omitempty"`
}

// Date is a calendar day without time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf converts t to a Date in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate decodes YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := codec.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Valid reports whether d names an existing day.
func (d Date) Valid() bool { return codec.IsCalendarDate(d.Year, d.Month, d.Day) }

func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day) }

// MarshalText renders YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }
