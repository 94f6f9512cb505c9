package labschema

// Output keys under which validated fields are stored. The rule table binds
// spreadsheet headers to these keys, and records are serialized with them.
const (
	KeyCode                = "code"
	KeyDescription         = "description"
	KeyValidationScript    = "validationScript"
	KeyGeneratedCodePrefix = "generatedCodePrefix"
	KeyAutoGeneratedCodes  = "autoGeneratedCodes"
	KeyURLTemplate         = "urlTemplate"
	KeyPropertyLabel       = "propertyLabel"
	KeyDataType            = "dataType"
	KeyVocabularyCode      = "vocabularyCode"
	KeyMandatory           = "mandatory"
	KeyShowInEditViews     = "showInEditViews"
	KeySection             = "section"
	KeyLabel               = "label"
	KeyOfficial            = "official"
)

// AttributeKeys returns the entity-level keys a category must declare rules for.
func AttributeKeys(c Category) []string {
	switch c.Canonical() {
	case CategoryObjectType:
		return []string{KeyCode, KeyDescription, KeyValidationScript, KeyGeneratedCodePrefix, KeyAutoGeneratedCodes}
	case CategoryCollectionType, CategoryDatasetType:
		return []string{KeyCode, KeyDescription, KeyValidationScript}
	case CategoryPropertyType:
		return []string{KeyCode, KeyDescription, KeyPropertyLabel, KeyDataType, KeyVocabularyCode}
	case CategoryVocabularyType:
		return []string{KeyCode, KeyDescription, KeyURLTemplate}
	default:
		return nil
	}
}

// ChildKeys returns the sub-table keys a category must declare rules for.
func ChildKeys(c Category) []string {
	switch c.Child() {
	case ChildProperties:
		return []string{KeyCode, KeyDescription, KeyMandatory, KeyShowInEditViews, KeySection, KeyPropertyLabel, KeyDataType, KeyVocabularyCode}
	case ChildTerms:
		return []string{KeyCode, KeyDescription, KeyURLTemplate, KeyLabel, KeyOfficial}
	default:
		return nil
	}
}
