package model

// Parameter keys produced by the parameter extractor.
const (
	ParamSubject   = "subject"
	ParamDuration  = "duration"
	ParamUnit      = "unit"
	ParamAmount    = "amount"
	ParamCategory  = "category"
	ParamHabitType = "habitType"
)

// Intent is the result of classifying one piece of user text.
type Intent struct {
	Parameters map[string]any `json:"parameters"`
	RawText    string         `json:"rawText"`
	Confidence float64        `json:"confidence"`
	Module     Module         `json:"module"`
}

// FallbackIntent is the zero-confidence welcome intent used whenever
// classification has nothing better to offer.
func FallbackIntent(rawText string) Intent {
	return Intent{
		Module:     Welcome,
		Confidence: 0,
		Parameters: map[string]any{},
		RawText:    rawText,
	}
}

// StringParam returns a parameter as a string, if present.
func (i Intent) StringParam(key string) (string, bool) {
	v, ok := i.Parameters[key].(string)
	return v, ok
}

// IntParam returns an integer parameter, if present.
func (i Intent) IntParam(key string) (int, bool) {
	v, ok := i.Parameters[key].(int)
	return v, ok
}

// FloatParam returns a float parameter, if present.
func (i Intent) FloatParam(key string) (float64, bool) {
	v, ok := i.Parameters[key].(float64)
	return v, ok
}
