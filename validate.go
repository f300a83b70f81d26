package citefile

import (
	"fmt"

	"github.com/reoring/citefile/codec"
)

// Validate runs the format-level rules that decoding cannot express and
// returns every finding; an empty result means the citation is valid. All
// checks run independently. c is not modified.
//
// Hard violations: no authors, impossible dates, malformed URLs, DOIs,
// ORCIDs, email addresses and identifiers, unknown license identifiers.
// Informational: a preferred citation is set; no licensing information.
func Validate(c *Citation) Issues {
	v := &validator{}
	root := RootPath()

	if len(c.Authors) == 0 {
		v.add(root.Field("authors").Issue(CodeTooFewItems, SeverityError, "min", 1))
	}
	v.authors(root.Field("authors"), c.Authors)
	v.authors(root.Field("contact"), c.Contact)
	v.date(root.Field("date-released"), c.DateReleased)
	v.doi(root.Field("doi"), c.DOI)
	v.identifiers(root.Field("identifiers"), c.Identifiers)
	v.license(root.Field("license"), c.License)
	v.url(root.Field("license-url"), c.LicenseURL)
	v.url(root.Field("repository"), c.Repository)
	v.url(root.Field("repository-artifact"), c.RepositoryArtifact)
	v.url(root.Field("repository-code"), c.RepositoryCode)
	v.url(root.Field("url"), c.URL)

	if c.PreferredCitation != nil {
		at := root.Field("preferred-citation")
		v.add(at.Issue(CodePreferredCitation, SeverityInfo))
		v.reference(at, c.PreferredCitation)
	}
	for i := range c.References {
		v.reference(root.Field("references").Index(i), &c.References[i])
	}
	if c.License.IsZero() && c.LicenseURL == "" {
		v.add(root.Field("license").Issue(CodeLicenseUnspecified, SeverityInfo))
	}
	return v.issues
}

type validator struct{ issues Issues }

func (v *validator) add(is Issue) { v.issues = append(v.issues, is) }

func (v *validator) check(at PathRef, s string, fn func(string) error) {
	if s == "" {
		return
	}
	if err := fn(s); err != nil {
		is := at.Issue(CodeFormatViolation, SeverityError, "reason", err.Error())
		is.Cause = err
		v.add(is)
	}
}

func (v *validator) url(at PathRef, s string)   { v.check(at, s, codec.CheckURL) }
func (v *validator) doi(at PathRef, s string)   { v.check(at, s, codec.CheckDOI) }
func (v *validator) orcid(at PathRef, s string) { v.check(at, s, codec.CheckORCID) }
func (v *validator) email(at PathRef, s string) { v.check(at, s, codec.CheckEmail) }

func (v *validator) date(at PathRef, d *Date) {
	if d == nil || d.Valid() {
		return
	}
	err := fmt.Errorf("%s: %w", d, codec.ErrCalendarDate)
	is := at.Issue(CodeFormatViolation, SeverityError, "reason", err.Error())
	is.Cause = err
	v.add(is)
}

func (v *validator) license(at PathRef, l License) {
	for i, id := range l {
		if _, ok := LookupLicense(id); !ok {
			v.add(at.Index(i).Issue(CodeFormatViolation, SeverityError, "reason", fmt.Sprintf("unknown SPDX license identifier %q", id), "token", id))
		}
	}
}

func (v *validator) authors(at PathRef, authors []Author) {
	for i, a := range authors {
		ai := at.Index(i)
		switch a := a.(type) {
		case *Person:
			if a != nil {
				v.contactable(ai, &a.Contactable)
			}
		case *Entity:
			v.entity(ai, a)
		default:
			v.add(ai.Issue(CodeUnrecognizedVariant, SeverityError, "keys", "none"))
		}
	}
}

func (v *validator) entity(at PathRef, e *Entity) {
	if e == nil {
		return
	}
	v.contactable(at, &e.Contactable)
	v.date(at.Field("date-start"), e.DateStart)
	v.date(at.Field("date-end"), e.DateEnd)
}

func (v *validator) contactable(at PathRef, c *Contactable) {
	v.email(at.Field("email"), c.Email)
	v.orcid(at.Field("orcid"), c.ORCID)
	v.url(at.Field("website"), c.Website)
}

func (v *validator) identifiers(at PathRef, ids []Identifier) {
	for i, id := range ids {
		vat := at.Index(i).Field("value")
		switch id.Type {
		case IdentifierDOI:
			v.doi(vat, id.Value)
		case IdentifierURL:
			v.url(vat, id.Value)
		case IdentifierSWH:
			v.check(vat, id.Value, codec.CheckSWHID)
		}
	}
}

func (v *validator) reference(at PathRef, r *Reference) {
	if len(r.Authors) == 0 {
		v.add(at.Field("authors").Issue(CodeTooFewItems, SeverityError, "min", 1))
	}
	v.authors(at.Field("authors"), r.Authors)
	v.authors(at.Field("contact"), r.Contact)
	v.authors(at.Field("editors"), r.Editors)
	v.entity(at.Field("conference"), r.Conference)
	v.entity(at.Field("institution"), r.Institution)
	v.entity(at.Field("publisher"), r.Publisher)
	v.date(at.Field("date-accessed"), r.DateAccessed)
	v.date(at.Field("date-downloaded"), r.DateDownloaded)
	v.date(at.Field("date-published"), r.DatePublished)
	v.date(at.Field("date-released"), r.DateReleased)
	v.doi(at.Field("doi"), r.DOI)
	v.identifiers(at.Field("identifiers"), r.Identifiers)
	v.license(at.Field("license"), r.License)
	v.url(at.Field("license-url"), r.LicenseURL)
	v.url(at.Field("repository"), r.Repository)
	v.url(at.Field("repository-artifact"), r.RepositoryArtifact)
	v.url(at.Field("repository-code"), r.RepositoryCode)
	v.url(at.Field("url"), r.URL)
}
