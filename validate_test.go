package citefile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/citefile"
)

func TestValidate_EntityOnlyCitation(t *testing.T) {
	c := &citefile.Citation{
		SchemaVersion: "1.2.0",
		Message:       citefile.DefaultMessage,
		Title:         "Tool",
		Authors:       []citefile.Author{&citefile.Entity{Name: "Acme"}},
	}
	findings := citefile.Validate(c)
	require.Len(t, findings, 1)
	assert.Equal(t, citefile.CodeLicenseUnspecified, findings[0].Code)
	assert.Equal(t, citefile.SeverityInfo, findings[0].Severity)
	assert.False(t, findings.HasErrors())
	assert.Equal(t, findings, c.Validate())
}

func TestValidate_HardViolations(t *testing.T) {
	bad := &citefile.Date{Year: 2021, Month: 2, Day: 30}
	c := &citefile.Citation{
		Authors: []citefile.Author{
			&citefile.Person{GivenNames: "A", FamilyNames: "B", Contactable: citefile.Contactable{
				Email: "not-an-email",
				ORCID: "https://orcid.org/0000-0002-1825-0098",
			}},
			&citefile.Entity{Name: "E", DateEnd: bad},
		},
		DateReleased:   bad,
		DOI:            "https://doi.org/10.5281/zenodo.1",
		License:        citefile.License{"MIT", "Nope-1.0"},
		URL:            "example.org",
		RepositoryCode: "https://github.com/x/y",
		Identifiers: []citefile.Identifier{
			{Type: citefile.IdentifierSWH, Value: "swh:1:rev:xyz"},
			{Type: citefile.IdentifierOther, Value: "anything"},
		},
	}
	findings := citefile.Validate(c)

	for _, p := range []string{
		"/authors/0/email",
		"/authors/0/orcid",
		"/authors/1/date-end",
		"/date-released",
		"/doi",
		"/license/1",
		"/url",
		"/identifiers/0/value",
	} {
		is := find(findings, citefile.CodeFormatViolation, p)
		if assert.NotNil(t, is, p) {
			assert.Equal(t, citefile.SeverityError, is.Severity, p)
		}
	}
	assert.Nil(t, find(findings, citefile.CodeFormatViolation, "/repository-code"))
	assert.Nil(t, find(findings, citefile.CodeFormatViolation, "/identifiers/1/value"))
	assert.Nil(t, find(findings, citefile.CodeLicenseUnspecified, "/license"))
}

func TestValidate_NoAuthors(t *testing.T) {
	findings := citefile.Validate(&citefile.Citation{LicenseURL: "https://example.org/LICENSE"})
	require.Len(t, findings, 1)
	assert.Equal(t, citefile.CodeTooFewItems, findings[0].Code)
	assert.Equal(t, "/authors", findings[0].Path)
}

func TestValidate_PreferredCitation(t *testing.T) {
	c := &citefile.Citation{
		Authors: []citefile.Author{&citefile.Entity{Name: "Acme"}},
		License: citefile.License{"MIT"},
		PreferredCitation: &citefile.Reference{
			Type:  citefile.RefArticle,
			Title: "Paper",
			URL:   "ftp//broken",
		},
	}
	findings := citefile.Validate(c)
	assert.NotNil(t, find(findings, citefile.CodePreferredCitation, "/preferred-citation"))
	assert.NotNil(t, find(findings, citefile.CodeTooFewItems, "/preferred-citation/authors"))
	assert.NotNil(t, find(findings, citefile.CodeFormatViolation, "/preferred-citation/url"))
	assert.Len(t, findings.Infos(), 1)
}
