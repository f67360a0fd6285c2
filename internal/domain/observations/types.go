package observations

// Category identifica el tipo de señal cruda que originó la observación.
type Category string

const (
	CategorySound            Category = "sound"
	CategoryFacialExpression Category = "facial_expression"
	CategoryBodyLanguage     Category = "body_language"
	CategoryEEG              Category = "eeg"
)

// IsValid reporta si la categoría es una de las soportadas.
func (c Category) IsValid() bool {
	switch c {
	case CategorySound, CategoryFacialExpression, CategoryBodyLanguage, CategoryEEG:
		return true
	}
	return false
}
