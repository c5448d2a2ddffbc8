package format

// Built-in format names.
const (
	Byte     = "byte"
	Date     = "date"
	DateTime = "date-time"
	Double   = "double"
	Float    = "float"
	Int32    = "int32"
	Int64    = "int64"
)

// Builtins returns fresh copies of the built-in formats. Their validators are
// no-ops; structural validation belongs to the schema validator.
func Builtins() []Format {
	return []Format{
		{
			Name:        Byte,
			Encode:      toByteString,
			Decode:      toByteString,
			Description: "Converts [wire]string:byte <=> Go string",
		},
		{
			Name:        Date,
			Encode:      encodeDate,
			Decode:      decodeDate,
			Description: "Converts [wire]string:date <=> Go time.Time (midnight UTC)",
		},
		{
			Name:        DateTime,
			Encode:      encodeDateTime,
			Decode:      decodeDateTime,
			Description: "Converts [wire]string:date-time <=> Go time.Time",
		},
		{
			Name:        Double,
			Encode:      toFloat64,
			Decode:      toFloat64,
			Description: "Converts [wire]number:double <=> Go float64",
		},
		{
			Name:        Float,
			Encode:      toFloat,
			Decode:      toFloat,
			Description: "Converts [wire]number:float <=> Go float32/float64",
		},
		{
			Name:        Int32,
			Encode:      toInt32,
			Decode:      toInt32,
			Description: "Converts [wire]integer:int32 <=> Go int32",
		},
		{
			Name:        Int64,
			Encode:      toInt64,
			Decode:      toInt64,
			Description: "Converts [wire]integer:int64 <=> Go int64",
		},
	}
}
