package citefile

import "fmt"

var contactFields = []FieldSpec{
	F("address"), F("alias"), F("city"), F("country"), F("email"), F("fax"),
	F("orcid"), F("post-code"), F("region"), F("tel"), F("website"),
}

var (
	citationFields = NewFieldTable(
		F("abstract"), F("authors"), F("cff-version", "schema-version", "schema_version"),
		F("commit"), F("contact"), F("date-released"), F("doi"), F("identifiers"),
		F("keywords"), F("license"), F("license-url"), F("message"),
		F("preferred-citation"), F("references"), F("repository"),
		F("repository-artifact"), F("repository-code"), F("title"), F("type"),
		F("url"), F("version"),
	)
	personFields = NewFieldTable(append([]FieldSpec{
		F("given-names"), F("family-names"), F("name-particle"), F("name-suffix"), F("affiliation"),
	}, contactFields...)...)
	entityFields = NewFieldTable(append([]FieldSpec{
		F("name"), F("location"), F("date-start"), F("date-end"),
	}, contactFields...)...)
	identifierFields = NewFieldTable(F("type"), F("value"), F("description"))
	referenceFields  = NewFieldTable(
		F("type"), F("authors"), F("title"), F("abstract"), F("collection-title"),
		F("collection-type"), F("commit"), F("conference"), F("contact"),
		F("date-accessed"), F("date-downloaded"), F("date-published"),
		F("date-released"), F("department"), F("doi"), F("edition"), F("editors"),
		F("end"), F("format"), F("identifiers"), F("institution"), F("isbn"),
		F("issn"), F("issue"), F("journal"), F("keywords"), F("languages"),
		F("license"), F("license-url"), F("medium"), F("month"), F("notes"),
		F("number"), F("pages"), F("publisher"), F("repository"),
		F("repository-artifact"), F("repository-code"), F("start"), F("status"),
		F("thesis-type"), F("url"), F("version"), F("volume"), F("year"),
	)
)

var (
	personVariant = Variant[Author]{
		Name:     "person",
		Fields:   personFields,
		Required: []string{"given-names", "family-names"},
		Decode:   func(r *record) Author { return decodePerson(r) },
	}
	entityVariant = Variant[Author]{
		Name:     "entity",
		Fields:   entityFields,
		Required: []string{"name"},
		Decode:   func(r *record) Author { return decodeEntity(r) },
	}
	authorVariants = NewVariantSet(personVariant, entityVariant)
	// entityVariants decodes fields that only admit an organization, such
	// as a reference's publisher.
	entityVariants = NewVariantSet(Variant[*Entity]{
		Name:     "entity",
		Fields:   entityFields,
		Required: []string{"name"},
		Decode:   decodeEntity,
	})
)

// Decode maps a generic document tree onto a Citation. Field-level problems
// are collected across the whole document; only a root that is not a
// mapping stops decoding early. On success it returns the Citation and any
// warnings; on failure it returns an Issues error with every issue found and
// no Citation.
func Decode(doc any, opts ...ParseOpt) (*Citation, Issues, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	d := newDecoder(opt)
	root, ok := asMapping(doc)
	if !ok {
		reason := fmt.Sprintf("document root is %s, not a mapping", kindOf(doc))
		return nil, nil, Issues{RootPath().Issue(CodeStructuralFailure, SeverityError, "reason", reason)}
	}
	c := d.citation(root)
	if n := d.errorCount(); n > 0 {
		d.log.Debug("decode failed", "errors", n, "issues", len(d.issues))
		return nil, nil, d.issues
	}
	return c, d.issues, nil
}

func (d *decoder) citation(raw map[string]any) *Citation {
	r := d.newRecord(raw, citationFields, RootPath())
	c := &Citation{
		Abstract:           r.optionalText("abstract"),
		SchemaVersion:      r.requiredText("cff-version"),
		Commit:             r.optionalText("commit"),
		DateReleased:       r.date("date-released"),
		DOI:                r.optionalText("doi"),
		Keywords:           r.stringSet("keywords"),
		License:            r.license("license"),
		LicenseURL:         r.optionalText("license-url"),
		Repository:         r.optionalText("repository"),
		RepositoryArtifact: r.optionalText("repository-artifact"),
		RepositoryCode:     r.optionalText("repository-code"),
		Title:              r.requiredText("title"),
		Type:               resolveEnum(r, typeSet, "type"),
		URL:                r.optionalText("url"),
		Version:            r.textOrNumber("version"),
	}
	if v, ok := r.values["message"]; ok {
		c.Message, _ = r.textAt(r.field("message"), v, true)
	} else {
		c.Message = DefaultMessage
		d.log.Debug("applied default", "path", "/message")
	}
	c.Authors = r.authors("authors", true)
	c.Contact = r.authors("contact", false)
	c.Identifiers = r.identifiers("identifiers")
	c.References = records(r, "references", 1, d.reference)
	if v, ok := r.values["preferred-citation"]; ok {
		if ref, ok := d.reference(v, r.field("preferred-citation")); ok {
			c.PreferredCitation = &ref
		}
	}
	return c
}

// authors decodes a sequence of persons and entities. A required sequence
// must be present and hold at least one author.
func (r *record) authors(name string, required bool) []Author {
	if !r.has(name) {
		if required {
			r.missing(name)
		}
		return nil
	}
	return records(r, name, 1, func(raw any, at PathRef) (Author, bool) {
		return authorVariants.decode(r.d, raw, at)
	})
}

// entity decodes a mapping field that must be an organization.
func (r *record) entity(name string) *Entity {
	v, ok := r.values[name]
	if !ok {
		return nil
	}
	e, _ := entityVariants.decode(r.d, v, r.field(name))
	return e
}

func (r *record) identifiers(name string) []Identifier {
	return records(r, name, 1, func(raw any, at PathRef) (Identifier, bool) {
		m, ok := asMapping(raw)
		if !ok {
			r.mismatch(at, "mapping", raw)
			return Identifier{}, false
		}
		ir := r.d.newRecord(m, identifierFields, at)
		return Identifier{
			Type:        resolveEnum(ir, identifierTypeSet, "type"),
			Value:       ir.requiredText("value"),
			Description: ir.optionalText("description"),
		}, true
	})
}

func decodeContactable(r *record) Contactable {
	return Contactable{
		Address:  r.optionalText("address"),
		Alias:    r.optionalText("alias"),
		City:     r.optionalText("city"),
		Country:  r.optionalText("country"),
		Email:    r.optionalText("email"),
		Fax:      r.optionalText("fax"),
		ORCID:    r.optionalText("orcid"),
		PostCode: r.textOrNumber("post-code"),
		Region:   r.optionalText("region"),
		Tel:      r.textOrNumber("tel"),
		Website:  r.optionalText("website"),
	}
}

func decodePerson(r *record) *Person {
	return &Person{
		GivenNames:   r.requiredText("given-names"),
		FamilyNames:  r.requiredText("family-names"),
		NameParticle: r.optionalText("name-particle"),
		NameSuffix:   r.optionalText("name-suffix"),
		Affiliation:  r.optionalText("affiliation"),
		Contactable:  decodeContactable(r),
	}
}

func decodeEntity(r *record) *Entity {
	return &Entity{
		Name:        r.requiredText("name"),
		Location:    r.optionalText("location"),
		DateStart:   r.date("date-start"),
		DateEnd:     r.date("date-end"),
		Contactable: decodeContactable(r),
	}
}

// reference decodes one entry of references (or preferred-citation).
func (d *decoder) reference(raw any, at PathRef) (Reference, bool) {
	m, ok := asMapping(raw)
	if !ok {
		d.report(at.Issue(CodeTypeMismatch, SeverityError, "expected", "mapping", "got", kindOf(raw)))
		return Reference{}, false
	}
	r := d.newRecord(m, referenceFields, at)
	return Reference{
		Type:               resolveEnum(r, referenceTypeSet, "type"),
		Authors:            r.authors("authors", true),
		Title:              r.requiredText("title"),
		Abstract:           r.optionalText("abstract"),
		CollectionTitle:    r.optionalText("collection-title"),
		CollectionType:     r.optionalText("collection-type"),
		Commit:             r.optionalText("commit"),
		Conference:         r.entity("conference"),
		Contact:            r.authors("contact", false),
		DateAccessed:       r.date("date-accessed"),
		DateDownloaded:     r.date("date-downloaded"),
		DatePublished:      r.date("date-published"),
		DateReleased:       r.date("date-released"),
		Department:         r.optionalText("department"),
		DOI:                r.optionalText("doi"),
		Edition:            r.textOrNumber("edition"),
		Editors:            r.authors("editors", false),
		End:                r.textOrNumber("end"),
		Format:             r.optionalText("format"),
		Identifiers:        r.identifiers("identifiers"),
		Institution:        r.entity("institution"),
		ISBN:               r.optionalText("isbn"),
		ISSN:               r.optionalText("issn"),
		Issue:              r.textOrNumber("issue"),
		Journal:            r.optionalText("journal"),
		Keywords:           r.stringSet("keywords"),
		Languages:          r.stringSet("languages"),
		License:            r.license("license"),
		LicenseURL:         r.optionalText("license-url"),
		Medium:             r.optionalText("medium"),
		Month:              r.textOrNumber("month"),
		Notes:              r.optionalText("notes"),
		Number:             r.textOrNumber("number"),
		Pages:              r.textOrNumber("pages"),
		Publisher:          r.entity("publisher"),
		Repository:         r.optionalText("repository"),
		RepositoryArtifact: r.optionalText("repository-artifact"),
		RepositoryCode:     r.optionalText("repository-code"),
		Start:              r.textOrNumber("start"),
		Status:             optionalEnum(r, referenceStatusSet, "status"),
		ThesisType:         r.optionalText("thesis-type"),
		URL:                r.optionalText("url"),
		Version:            r.textOrNumber("version"),
		Volume:             r.textOrNumber("volume"),
		Year:               r.textOrNumber("year"),
	}, true
}
