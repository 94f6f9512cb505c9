package labschema

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Attributes is the category-specific part of an EntityRecord. Exactly one
// concrete type exists per canonical category.
type Attributes interface {
	// Category returns the canonical category the bundle belongs to.
	Category() Category
}

// ObjectAttributes belongs to OBJECT_TYPE (and SAMPLE_TYPE) entities.
type ObjectAttributes struct {
	ValidationScript    string
	GeneratedCodePrefix string
	AutoGeneratedCodes  bool
}

func (*ObjectAttributes) Category() Category { return CategoryObjectType }

// CollectionAttributes belongs to COLLECTION_TYPE (and EXPERIMENT_TYPE) entities.
type CollectionAttributes struct {
	ValidationScript string
}

func (*CollectionAttributes) Category() Category { return CategoryCollectionType }

// DatasetAttributes belongs to DATASET_TYPE entities.
// MainDatasetPattern and MainDatasetPath are reserved; extraction leaves them empty.
type DatasetAttributes struct {
	ValidationScript   string
	MainDatasetPattern string
	MainDatasetPath    string
}

func (*DatasetAttributes) Category() Category { return CategoryDatasetType }

// PropertyTypeAttributes belongs to PROPERTY_TYPE entities.
type PropertyTypeAttributes struct {
	PropertyLabel  string
	DataType       string
	VocabularyCode string
}

func (*PropertyTypeAttributes) Category() Category { return CategoryPropertyType }

// VocabularyAttributes belongs to VOCABULARY_TYPE entities.
type VocabularyAttributes struct {
	URLTemplate string
}

func (*VocabularyAttributes) Category() Category { return CategoryVocabularyType }

// NewAttributes returns the empty bundle for a category, or nil for an unknown one.
func NewAttributes(c Category) Attributes {
	switch c.Canonical() {
	case CategoryObjectType:
		return &ObjectAttributes{}
	case CategoryCollectionType:
		return &CollectionAttributes{}
	case CategoryDatasetType:
		return &DatasetAttributes{}
	case CategoryPropertyType:
		return &PropertyTypeAttributes{}
	case CategoryVocabularyType:
		return &VocabularyAttributes{}
	default:
		return nil
	}
}

// EntityRecord is one entity type extracted from a block.
// Properties is set for object, collection and dataset categories, Terms for
// vocabularies; both keep spreadsheet row order.
type EntityRecord struct {
	Category    Category
	Code        string
	Description string
	Attributes  Attributes
	Properties  *Ordered[*PropertyAssignment]
	Terms       *Ordered[*VocabularyTerm]
}

// NewEntityRecord creates a record with the attribute bundle and child table
// that match the category.
func NewEntityRecord(c Category) *EntityRecord {
	rec := &EntityRecord{
		Category:   c,
		Attributes: NewAttributes(c),
	}
	switch c.Child() {
	case ChildProperties:
		rec.Properties = NewOrdered[*PropertyAssignment]()
	case ChildTerms:
		rec.Terms = NewOrdered[*VocabularyTerm]()
	}
	return rec
}

// MarshalJSON renders the record as a flat object keyed by output keys,
// followed by its properties or terms.
func (r *EntityRecord) MarshalJSON() ([]byte, error) {
	obj := NewOrdered[any]()
	obj.Put(KeyCode, r.Code)
	obj.Put(KeyDescription, r.Description)

	switch a := r.Attributes.(type) {
	case *ObjectAttributes:
		obj.Put(KeyValidationScript, a.ValidationScript)
		obj.Put(KeyGeneratedCodePrefix, a.GeneratedCodePrefix)
		obj.Put(KeyAutoGeneratedCodes, a.AutoGeneratedCodes)
	case *CollectionAttributes:
		obj.Put(KeyValidationScript, a.ValidationScript)
	case *DatasetAttributes:
		obj.Put(KeyValidationScript, a.ValidationScript)
		obj.Put("mainDatasetPattern", a.MainDatasetPattern)
		obj.Put("mainDatasetPath", a.MainDatasetPath)
	case *PropertyTypeAttributes:
		obj.Put(KeyPropertyLabel, a.PropertyLabel)
		obj.Put(KeyDataType, a.DataType)
		obj.Put(KeyVocabularyCode, nullable(a.VocabularyCode))
	case *VocabularyAttributes:
		obj.Put(KeyURLTemplate, a.URLTemplate)
	}

	switch {
	case r.Properties != nil:
		obj.Put(ChildProperties.String(), r.Properties)
	case r.Terms != nil:
		obj.Put(ChildTerms.String(), r.Terms)
	}
	return obj.MarshalJSON()
}

// PropertyAssignment is one row of a properties sub-table.
// VocabularyCode is only meaningful for CONTROLLEDVOCABULARY properties.
type PropertyAssignment struct {
	Code            string
	Description     string
	Mandatory       bool
	ShowInEditViews bool
	Section         string
	PropertyLabel   string
	DataType        string
	VocabularyCode  string
}

func (p *PropertyAssignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code            string  `json:"code"`
		Description     string  `json:"description"`
		Mandatory       bool    `json:"mandatory"`
		ShowInEditViews bool    `json:"showInEditViews"`
		Section         string  `json:"section"`
		PropertyLabel   string  `json:"propertyLabel"`
		DataType        string  `json:"dataType"`
		VocabularyCode  *string `json:"vocabularyCode"`
	}{
		Code:            p.Code,
		Description:     p.Description,
		Mandatory:       p.Mandatory,
		ShowInEditViews: p.ShowInEditViews,
		Section:         p.Section,
		PropertyLabel:   p.PropertyLabel,
		DataType:        p.DataType,
		VocabularyCode:  nullable(p.VocabularyCode),
	})
}

// VocabularyTerm is one row of a terms sub-table.
type VocabularyTerm struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	URLTemplate string `json:"urlTemplate"`
	Label       string `json:"label"`
	Official    bool   `json:"official"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Source identifies the workbook a Result was extracted from.
type Source struct {
	Path     string    `json:"path,omitempty"`
	Checksum string    `json:"checksum"`
	ID       uuid.UUID `json:"id"`
}

// Entities is the per-sheet or per-category map from code to record.
type Entities = Hierarchy[*EntityRecord]

// Result is the outcome of extracting one workbook.
//
// Sheets maps normalized sheet names to their entities and is what hosts
// serialize. Categories holds the same records grouped by canonical category.
type Result struct {
	Source      Source
	Sheets      *Ordered[*Entities]
	Categories  map[Category]*Entities
	Diagnostics Diagnostics
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{
		Sheets:     NewOrdered[*Entities](),
		Categories: make(map[Category]*Entities),
	}
}

// Entity looks up a record by normalized sheet name and code.
func (r *Result) Entity(sheet, code string) (*EntityRecord, bool) {
	entities, ok := r.Sheets.Get(sheet)
	if !ok {
		return nil, false
	}
	return entities.Get(code)
}

// Category returns the records of one category, synonyms folded.
func (r *Result) Category(c Category) *Entities {
	if e, ok := r.Categories[c.Canonical()]; ok {
		return e
	}
	return NewHierarchy[*EntityRecord]()
}
