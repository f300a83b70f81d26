package codec

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	doiPattern   = regexp.MustCompile(`^10\.\d{4,9}(\.\d+)?/[A-Za-z0-9:/_;\-\.\(\)\[\]\\]+$`)
	orcidPattern = regexp.MustCompile(`^https://orcid\.org/([0-9]{4})-([0-9]{4})-([0-9]{4})-([0-9]{3}[0-9X])$`)
	swhidPattern = regexp.MustCompile(`^swh:1:(snp|rel|rev|dir|cnt):[0-9a-fA-F]{40}(;[a-z]+=.+)*$`)
	emailPattern = regexp.MustCompile(`^[\S]+@[\S]+\.[\S]{2,}$`)
)

var urlSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "sftp": true}

// CheckURL accepts absolute http, https, ftp and sftp URLs with a host.
func CheckURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if !urlSchemes[strings.ToLower(u.Scheme)] {
		return fmt.Errorf("URL scheme must be http, https, ftp or sftp, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("URL has no host")
	}
	return nil
}

// CheckDOI accepts a bare DOI such as 10.5281/zenodo.1234.
func CheckDOI(s string) error {
	if !doiPattern.MatchString(s) {
		if strings.HasPrefix(s, "https://doi.org/") || strings.HasPrefix(s, "doi:") {
			return errors.New("DOI must be given without resolver prefix")
		}
		return errors.New("not a DOI (expected 10.NNNN/suffix)")
	}
	return nil
}

// CheckORCID accepts https://orcid.org/XXXX-XXXX-XXXX-XXXX and verifies the
// ISO 7064 11-2 check digit.
func CheckORCID(s string) error {
	m := orcidPattern.FindStringSubmatch(s)
	if m == nil {
		return errors.New("ORCID must look like https://orcid.org/0000-0000-0000-0000")
	}
	digits := m[1] + m[2] + m[3] + m[4]
	total := 0
	for _, c := range digits[:15] {
		total = (total + int(c-'0')) * 2
	}
	check := (12 - total%11) % 11
	want := byte('0' + check)
	if check == 10 {
		want = 'X'
	}
	if digits[15] != want {
		return errors.New("ORCID check digit does not match")
	}
	return nil
}

// CheckSWHID accepts Software Heritage identifiers with optional qualifiers.
func CheckSWHID(s string) error {
	if !swhidPattern.MatchString(s) {
		return errors.New("not a Software Heritage identifier (swh:1:<type>:<40 hex>)")
	}
	return nil
}

// CheckEmail applies the loose address shape citation files require.
func CheckEmail(s string) error {
	if !emailPattern.MatchString(s) {
		return errors.New("not an email address")
	}
	return nil
}
