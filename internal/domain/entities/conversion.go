package entities

// ConversionResult holds every record created or touched by one quote conversion.
type ConversionResult struct {
	Quote   Quote   `json:"quote"`
	Order   Order   `json:"order"`
	Project Project `json:"project"`
	Tasks   []Task  `json:"tasks"`
	Invoice Invoice `json:"invoice"`
}
