package citefile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/citefile"
)

func TestParse_ValidWithFindings(t *testing.T) {
	doc := minimalDoc()
	doc["extra"] = true
	c, findings, err := citefile.Parse(doc)
	require.NoError(t, err)
	require.NotNil(t, c)

	// decode warnings come before validator findings
	require.Len(t, findings, 2)
	assert.Equal(t, citefile.CodeUnknownField, findings[0].Code)
	assert.Equal(t, citefile.CodeLicenseUnspecified, findings[1].Code)
}

func TestParse_NoFindings(t *testing.T) {
	doc := minimalDoc()
	doc["license"] = "MIT"
	c, findings, err := citefile.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "Tool", c.Title)
	assert.Nil(t, findings)
}

func TestParse_ValidatorFailure(t *testing.T) {
	doc := minimalDoc()
	doc["url"] = "not a url"
	c, findings, err := citefile.Parse(doc)
	assert.Nil(t, c)
	assert.Nil(t, findings)

	var iss citefile.Issues
	require.True(t, errors.As(err, &iss))
	assert.NotNil(t, find(iss, citefile.CodeFormatViolation, "/url"))
	assert.NotNil(t, find(iss, citefile.CodeLicenseUnspecified, "/license"))
	assert.Contains(t, err.Error(), "/url")
}

func TestParse_DecodeFailureSkipsValidator(t *testing.T) {
	doc := minimalDoc()
	delete(doc, "title")
	doc["url"] = "not a url"
	_, _, err := citefile.Parse(doc)
	iss := issuesOf(t, err)
	assert.Equal(t, []string{citefile.CodeMissingRequiredField}, iss.Codes())
}
