package citefile

// ReferenceType is the kind of a referenced work, spelled as in the CFF
// reference-type vocabulary (for example "article" or "software-code").
type ReferenceType string

// Commonly used reference types; the full vocabulary is in referenceTypes.
const (
	RefArticle  ReferenceType = "article"
	RefBook     ReferenceType = "book"
	RefData     ReferenceType = "data"
	RefGeneric  ReferenceType = "generic"
	RefReport   ReferenceType = "report"
	RefSoftware ReferenceType = "software"
	RefThesis   ReferenceType = "thesis"
	RefWebsite  ReferenceType = "website"
)

var referenceTypes = []ReferenceType{
	"art", "article", "audiovisual", "bill", "blog", "book", "catalogue",
	"conference", "conference-paper", "data", "database", "dictionary",
	"edited-work", "encyclopedia", "film-broadcast", "generic",
	"government-document", "grant", "hearing", "historical-work",
	"legal-case", "legal-rule", "magazine-article", "manual", "map",
	"multimedia", "music", "newspaper-article", "pamphlet", "patent",
	"personal-communication", "proceedings", "report", "serial", "slides",
	"software", "software-code", "software-container", "software-executable",
	"software-virtual-machine", "sound-recording", "standard", "statute",
	"thesis", "unpublished", "video", "website",
}

// referenceTypeSet has no default: a reference must state its type.
var referenceTypeSet = func() *EnumSet[ReferenceType] {
	vs := make([]EnumVariant[ReferenceType], len(referenceTypes))
	for i, t := range referenceTypes {
		vs[i] = EnumVariant[ReferenceType]{Value: t, Label: string(t)}
	}
	return NewEnumSet(vs...)
}()

// referenceStatusSet covers the publication status of unpublished works.
var referenceStatusSet = NewEnumSet(
	EnumVariant[string]{Value: "abstract", Label: "abstract"},
	EnumVariant[string]{Value: "advance-online", Label: "advance-online"},
	EnumVariant[string]{Value: "in-preparation", Label: "in-preparation"},
	EnumVariant[string]{Value: "in-press", Label: "in-press"},
	EnumVariant[string]{Value: "preprint", Label: "preprint"},
	EnumVariant[string]{Value: "submitted", Label: "submitted"},
)

// Reference is another creative work: a dependency the work builds on, or
// the work that should be cited instead (preferred-citation).
type Reference struct {
	Type               ReferenceType `json:"type"`
	Authors            []Author      `json:"authors"`
	Title              string        `json:"title"`
	Abstract           string        `json:"abstract,omitempty"`
	CollectionTitle    string        `json:"collection-title,omitempty"`
	CollectionType     string        `json:"collection-type,omitempty"`
	Commit             string        `json:"commit,omitempty"`
	Conference         *Entity       `json:"conference,omitempty"`
	Contact            []Author      `json:"contact,omitempty"`
	DateAccessed       *Date         `json:"date-accessed,omitempty"`
	DateDownloaded     *Date         `json:"date-downloaded,omitempty"`
	DatePublished      *Date         `json:"date-published,omitempty"`
	DateReleased       *Date         `json:"date-released,omitempty"`
	Department         string        `json:"department,omitempty"`
	DOI                string        `json:"doi,omitempty"`
	Edition            string        `json:"edition,omitempty"`
	Editors            []Author      `json:"editors,omitempty"`
	End                string        `json:"end,omitempty"`
	Format             string        `json:"format,omitempty"`
	Identifiers        []Identifier  `json:"identifiers,omitempty"`
	Institution        *Entity       `json:"institution,omitempty"`
	ISBN               string        `json:"isbn,omitempty"`
	ISSN               string        `json:"issn,omitempty"`
	Issue              string        `json:"issue,omitempty"`
	Journal            string        `json:"journal,omitempty"`
	Keywords           []string      `json:"keywords,omitempty"`
	Languages          []string      `json:"languages,omitempty"`
	License            License       `json:"license,omitempty"`
	LicenseURL         string        `json:"license-url,omitempty"`
	Medium             string        `json:"medium,omitempty"`
	Month              string        `json:"month,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	Number             string        `json:"number,omitempty"`
	Pages              string        `json:"pages,omitempty"`
	Publisher          *Entity       `json:"publisher,omitempty"`
	Repository         string        `json:"repository,omitempty"`
	RepositoryArtifact string        `json:"repository-artifact,omitempty"`
	RepositoryCode     string        `json:"repository-code,omitempty"`
	Start              string        `json:"start,omitempty"`
	Status             string        `json:"status,omitempty"`
	ThesisType         string        `json:"thesis-type,omitempty"`
	URL                string        `json:"url,omitempty"`
	Version            string        `json:"version,omitempty"`
	Volume             string        `json:"volume,omitempty"`
	Year               string        `json:"year,omitempty"`
}
