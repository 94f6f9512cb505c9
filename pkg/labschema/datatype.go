package labschema

// DataType is the declared type of a property.
type DataType string

const (
	DataTypeInteger              DataType = "INTEGER"
	DataTypeReal                 DataType = "REAL"
	DataTypeVarchar              DataType = "VARCHAR"
	DataTypeMultilineVarchar     DataType = "MULTILINE_VARCHAR"
	DataTypeHyperlink            DataType = "HYPERLINK"
	DataTypeBoolean              DataType = "BOOLEAN"
	DataTypeControlledVocabulary DataType = "CONTROLLEDVOCABULARY"
	DataTypeXML                  DataType = "XML"
	DataTypeTimestamp            DataType = "TIMESTAMP"
	DataTypeDate                 DataType = "DATE"
	DataTypeSample               DataType = "SAMPLE"
	DataTypeObject               DataType = "OBJECT"
)

var dataTypes = []DataType{
	DataTypeInteger,
	DataTypeReal,
	DataTypeVarchar,
	DataTypeMultilineVarchar,
	DataTypeHyperlink,
	DataTypeBoolean,
	DataTypeControlledVocabulary,
	DataTypeXML,
	DataTypeTimestamp,
	DataTypeDate,
	DataTypeSample,
	DataTypeObject,
}

// DataTypes returns the allowed data type tokens in declaration order.
func DataTypes() []DataType {
	out := make([]DataType, len(dataTypes))
	copy(out, dataTypes)
	return out
}

// IsDataType reports whether s is exactly one of the allowed tokens.
func IsDataType(s string) bool {
	for _, dt := range dataTypes {
		if string(dt) == s {
			return true
		}
	}
	return false
}
