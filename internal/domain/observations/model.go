package observations

// Record es una muestra de comportamiento: dos scores acotados [0,1]
// producidos por un clasificador, con contexto opcional.
//
// CreatedAt lo asigna el store al escribir y nunca se muta. Se conserva
// tal cual llega del store (texto) porque distintas capas de storage lo
// serializan distinto: con `Z` final, con offset pelado `+00`, o con un
// espacio en vez de `T`. ParseStoredTime normaliza las tres formas.
type Record struct {
	ID          string
	OwnerUserID string
	PetID       string

	Category Category

	PositiveScore float64
	ActiveScore   float64

	// ActivityNote es texto libre opcional con el contexto del momento
	// ("jugando en el parque", "después de comer").
	ActivityNote string

	// CreatedAt es la forma serializada cruda del instante UTC.
	CreatedAt string
}
