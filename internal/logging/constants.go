package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output easy to filter and aggregate.
const (
	FieldFile        = "file_path"
	FieldCategory    = "category"
	FieldKeyword     = "keyword"
	FieldMerchant    = "merchant"
	FieldMonth       = "month"
	FieldCount       = "count"
	FieldReason      = "reason"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldDescription = "description"
)
